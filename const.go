package mscfb

// ========================================================================= //

const (
	HEADER_LEN                 int = 512 // length of CFB file header, in bytes
	HEADER_FIELDS_LEN          int = 76  // header bytes preceding the embedded MSAT
	SECTOR_LEN                 int = 512
	DIR_ENTRY_LEN              int = 128 // length of directory entry, in bytes
	NUM_MSAT_ENTRIES_IN_HEADER int = 109
	SAT_ENTRIES_PER_SECTOR     int = SECTOR_LEN / 4
	MSAT_ENTRIES_PER_SECTOR    int = SAT_ENTRIES_PER_SECTOR - 1 // last slot links to the next MSAT sector
	DIR_ENTRIES_PER_SECTOR     int = SECTOR_LEN / DIR_ENTRY_LEN
)

// Constants for CFB file header values:
var MAGIC_NUMBER = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}

const (
	MINOR_VERSION      uint16 = 0x3e
	BYTE_ORDER_MARK    uint16 = 0xfffe
	MINI_SECTOR_SHIFT  uint16 = 6 // 64-byte mini sectors
	MINI_STREAM_CUTOFF uint32 = 4096
	STREAM_ALIGN       int    = 4096 // payload is padded to this boundary
)

// Constants for SAT and MSAT entries:
const (
	MAX_REGULAR_SECTOR int64 = 0xfffffffa
	FREE_SECTOR        int32 = -1
	END_OF_CHAIN       int32 = -2
	SAT_SECTOR         int32 = -3
	MSAT_SECTOR        int32 = -4
)

// Constants for directory entries:
const (
	ROOT_DIR_NAME              = "Root Entry"
	OBJ_TYPE_UNALLOCATED uint8 = 0
	OBJ_TYPE_STORAGE     uint8 = 1
	OBJ_TYPE_STREAM      uint8 = 2
	OBJ_TYPE_ROOT        uint8 = 5
	COLOR_RED            uint8 = 0
	COLOR_BLACK          uint8 = 1
	ROOT_STREAM_ID       int32 = 0
	NO_STREAM            int32 = -1
	DEFAULT_STREAM_NAME        = "Workbook"
	DEFAULT_WRITE_CHUNK  int   = 4 * 1024 * 1024
)
