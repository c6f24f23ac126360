// Package scenario runs declarative scripts of list operations, for
// exercising the containers in dt from configuration files rather
// than code. Scripts are written in YAML or TOML.
package scenario

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tychoish/chain/ers"
)

// Op names a list operation.
type Op string

const (
	OpPushFront    Op = "push_front"
	OpPushBack     Op = "push_back"
	OpInsert       Op = "insert"
	OpInsertSorted Op = "insert_sorted"
	OpPopFront     Op = "pop_front"
	OpPopBack      Op = "pop_back"
	OpRemoveAt     Op = "remove_at"
	OpRemoveAll    Op = "remove_all"
	OpSort         Op = "sort"
	OpSortDesc     Op = "sort_desc"
	OpReverse      Op = "reverse"
	OpUnique       Op = "unique"
	OpMerge        Op = "merge"
	OpBinarySearch Op = "binary_search"
	OpCheck        Op = "check"
)

func (op Op) valid() bool {
	switch op {
	case OpPushFront, OpPushBack, OpInsert, OpInsertSorted,
		OpPopFront, OpPopBack, OpRemoveAt, OpRemoveAll,
		OpSort, OpSortDesc, OpReverse, OpUnique, OpMerge,
		OpBinarySearch, OpCheck:
		return true
	default:
		return false
	}
}

// ErrorKind names the class of error a step is expected to produce.
// The empty kind means the step must succeed.
type ErrorKind string

const (
	ExpectNone       ErrorKind = ""
	ExpectOutOfRange ErrorKind = "out_of_range"
	ExpectUnderflow  ErrorKind = "underflow"
	ExpectNotSorted  ErrorKind = "not_sorted"
)

func (k ErrorKind) valid() bool {
	switch k {
	case ExpectNone, ExpectOutOfRange, ExpectUnderflow, ExpectNotSorted:
		return true
	default:
		return false
	}
}

// KindOf classifies an error returned by a list operation. Errors
// outside the known kinds are reported as "other".
func KindOf(err error) ErrorKind {
	if ers.Ok(err) {
		return ExpectNone
	}

	var sentinel ers.Error
	if !ers.As(err, &sentinel) {
		return "other"
	}

	switch sentinel {
	case ers.ErrOutOfRange:
		return ExpectOutOfRange
	case ers.ErrUnderflow:
		return ExpectUnderflow
	case ers.ErrNotSorted:
		return ExpectNotSorted
	default:
		return "other"
	}
}

// Step is one operation in a script. Which of Value, Index, and
// Values are used depends on the operation:
//
//   - Value: push_front, push_back, insert, insert_sorted,
//     remove_all, binary_search
//   - Index: insert, remove_at
//   - Values: merge (the other list), check (the expected contents)
//
// Found, when set, is the expected result of a binary_search.
type Step struct {
	Op          Op        `yaml:"op" toml:"op"`
	Value       int       `yaml:"value" toml:"value"`
	Index       int       `yaml:"index" toml:"index"`
	Values      []int     `yaml:"values" toml:"values"`
	Found       *bool     `yaml:"found" toml:"found"`
	ExpectError ErrorKind `yaml:"expect_error" toml:"expect_error"`
}

// Script is a named sequence of steps applied to a list of ints that
// starts out holding Values.
type Script struct {
	Name   string `yaml:"name" toml:"name"`
	Values []int  `yaml:"values" toml:"values"`
	Steps  []Step `yaml:"steps" toml:"steps"`
}

// Validate checks that every step names a known operation and error
// kind. Errors are rooted in ers.ErrInvalidInput.
func (s *Script) Validate() error {
	for idx, step := range s.Steps {
		if !step.Op.valid() {
			return ers.Wrapf(ers.ErrInvalidInput, "step %d: unknown op %q", idx, step.Op)
		}
		if !step.ExpectError.valid() {
			return ers.Wrapf(ers.ErrInvalidInput, "step %d: unknown error kind %q", idx, step.ExpectError)
		}
	}
	return nil
}

// Format identifies the syntax of a script.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file name's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", ers.Wrapf(ers.ErrInvalidInput, "cannot determine script format of %q", path)
	}
}

// Parse decodes and validates a script.
func Parse(data []byte, format Format) (*Script, error) {
	s := &Script{}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil {
			return nil, ers.Wrapf(ers.ErrInvalidInput, "parse yaml script: %v", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), s)
		if err != nil {
			return nil, ers.Wrapf(ers.ErrInvalidInput, "parse toml script: %v", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, ers.Wrapf(ers.ErrInvalidInput, "unknown key %q in toml script", undecoded[0].String())
		}
	default:
		return nil, ers.Wrapf(ers.ErrInvalidInput, "unsupported script format %q", format)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFS reads and parses the script at path in the file system,
// choosing the format from the extension. A script without a name is
// named after its file.
func LoadFS(fsys fs.FS, path string) (*Script, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, ers.Wrapf(err, "read script %q", path)
	}

	s, err := Parse(data, format)
	if err != nil {
		return nil, ers.Wrap(err, path)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Load reads a script from the local file system.
func Load(path string) (*Script, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return LoadFS(os.DirFS(dir), name)
}
