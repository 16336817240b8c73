package mscfb

type ObjectType int

const (
	ObjUnallocated ObjectType = iota
	ObjStorage
	ObjStream
	ObjRoot
)

func (o ObjectType) AsByte() byte {
	switch o {
	case ObjUnallocated:
		return OBJ_TYPE_UNALLOCATED
	case ObjStorage:
		return OBJ_TYPE_STORAGE
	case ObjStream:
		return OBJ_TYPE_STREAM
	case ObjRoot:
		return OBJ_TYPE_ROOT
	default:
		return OBJ_TYPE_UNALLOCATED
	}
}

func (o ObjectType) String() string {
	switch o {
	case ObjStorage:
		return "storage"
	case ObjStream:
		return "stream"
	case ObjRoot:
		return "root"
	default:
		return "unallocated"
	}
}
