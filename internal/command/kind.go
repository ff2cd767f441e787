package command

// Kind identifies one of the supported chat commands
type Kind string

// Supported commands
const (
	KindStart       Kind = "start"
	KindAdd         Kind = "add"
	KindMove        Kind = "move"
	KindList        Kind = "list"
	KindListMyHouse Kind = "list_my_house"
	KindListGFHouse Kind = "list_gf_house"
	KindDelete      Kind = "delete"
)

// Kinds lists every command in help order
var Kinds = []Kind{KindStart, KindAdd, KindMove, KindList, KindListMyHouse, KindListGFHouse, KindDelete}

var kindsByKeyword = func() map[string]Kind {
	m := make(map[string]Kind, len(Kinds))
	for _, k := range Kinds {
		m[string(k)] = k
	}
	return m
}()

// KindFromKeyword resolves a keyword by exact match
func KindFromKeyword(keyword string) (Kind, bool) {
	k, ok := kindsByKeyword[keyword]
	return k, ok
}

// TakesItem reports whether the command expects an item name argument
func (k Kind) TakesItem() bool {
	switch k {
	case KindAdd, KindMove, KindDelete:
		return true
	default:
		return false
	}
}
