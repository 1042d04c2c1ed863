// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package pmi // import "github.com/sysstat/sapcp/pmi"

import "fmt"

// Type is the value type of a metric.
type Type int32

const (
	TypeInt32 Type = iota
	TypeUint32
	TypeInt64
	TypeUint64
	TypeFloat
	TypeDouble
	TypeString
)

func (t Type) String() string {
	switch t {
	case TypeInt32:
		return "32"
	case TypeUint32:
		return "u32"
	case TypeInt64:
		return "64"
	case TypeUint64:
		return "u64"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	}
	return fmt.Sprintf("type(%d)", int32(t))
}

// Semantics describes how consumers should interpret successive values
// of a metric.
type Semantics int32

const (
	// SemCounter values increase monotonically and are rate converted.
	SemCounter Semantics = 1
	// SemInstant values are point-in-time readings.
	SemInstant Semantics = 3
	// SemDiscrete values are point-in-time readings that rarely change,
	// typically configuration.
	SemDiscrete Semantics = 4
)

func (s Semantics) String() string {
	switch s {
	case SemCounter:
		return "counter"
	case SemInstant:
		return "instant"
	case SemDiscrete:
		return "discrete"
	}
	return fmt.Sprintf("semantics(%d)", int32(s))
}

// Desc is the full descriptor of a metric: its external name plus the
// typed identity consumers need to interpret its values.
type Desc struct {
	Name  string
	ID    ID
	Type  Type
	InDom InDom
	Sem   Semantics
	Units Units
}

// validName reports whether name is a well formed dotted metric name.
// Each component starts with a letter and continues with letters,
// digits or underscores.
func validName(name string) bool {
	if name == "" {
		return false
	}
	compLen := 0
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '.':
			if compLen == 0 {
				return false
			}
			compLen = 0
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			compLen++
		case c == '_' || (c >= '0' && c <= '9'):
			if compLen == 0 {
				return false
			}
			compLen++
		default:
			return false
		}
	}
	return compLen > 0
}
