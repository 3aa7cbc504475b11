package cli

import (
	"fmt"
	"strconv"
)

type flagKind uint8

const (
	flagBool flagKind = iota + 1
	flagString
	flagInt
)

// FlagSet is a typed flag registry for a command.
type FlagSet struct {
	defs   []*flagDef
	byName map[string]*flagDef
}

type flagDef struct {
	name  string
	usage string
	kind  flagKind

	boolPtr   *bool
	stringPtr *string
	intPtr    *int
}

func newFlagSet() *FlagSet {
	return &FlagSet{byName: map[string]*flagDef{}}
}

// Bool registers a bool flag and returns a pointer to its value.
func (fs *FlagSet) Bool(name string, def bool, usage string) *bool {
	ptr := new(bool)
	*ptr = def
	fs.add(&flagDef{name: name, usage: usage, kind: flagBool, boolPtr: ptr})
	return ptr
}

// String registers a string flag and returns a pointer to its value.
func (fs *FlagSet) String(name string, def string, usage string) *string {
	ptr := new(string)
	*ptr = def
	fs.add(&flagDef{name: name, usage: usage, kind: flagString, stringPtr: ptr})
	return ptr
}

// Int registers an int flag and returns a pointer to its value.
func (fs *FlagSet) Int(name string, def int, usage string) *int {
	ptr := new(int)
	*ptr = def
	fs.add(&flagDef{name: name, usage: usage, kind: flagInt, intPtr: ptr})
	return ptr
}

func (fs *FlagSet) add(def *flagDef) {
	if def.name == "" {
		panic("cli: flag name must be non-empty")
	}
	if _, ok := fs.byName[def.name]; ok {
		panic("cli: duplicate flag: --" + def.name)
	}
	fs.defs = append(fs.defs, def)
	fs.byName[def.name] = def
}

func (fs *FlagSet) lookup(name string) *flagDef {
	if fs == nil {
		return nil
	}
	return fs.byName[name]
}

func (def *flagDef) set(raw string) error {
	switch def.kind {
	case flagBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*def.boolPtr = v
	case flagString:
		*def.stringPtr = raw
	case flagInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*def.intPtr = v
	default:
		return fmt.Errorf("unknown flag kind")
	}
	return nil
}

func (def *flagDef) kindName() string {
	switch def.kind {
	case flagString:
		return "string"
	case flagInt:
		return "int"
	default:
		return ""
	}
}
