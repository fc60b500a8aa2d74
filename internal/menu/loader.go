package menu

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidMenu reports a menu file that cannot be turned into a tree.
var ErrInvalidMenu = errors.New("invalid menu definition")

// File is the on-disk shape of a menu tree.
type File struct {
	RootName string    `yaml:"rootName" toml:"rootName"`
	Items    []ItemDef `yaml:"items" toml:"items"`
}

// ItemDef describes one node of a menu file.
type ItemDef struct {
	Name string `yaml:"name" toml:"name"`
	// Run is a shell command executed with sh -c.
	Run string `yaml:"run,omitempty" toml:"run,omitempty"`
	// Returns ends the session after Run, yielding its trimmed stdout.
	Returns bool `yaml:"returns,omitempty" toml:"returns,omitempty"`
	// Value ends the session with a literal result.
	Value *string `yaml:"value,omitempty" toml:"value,omitempty"`
	// Exit ends the session with no result.
	Exit     bool      `yaml:"exit,omitempty" toml:"exit,omitempty"`
	Children []ItemDef `yaml:"children,omitempty" toml:"children,omitempty"`
}

// Format selects the decoder for a menu file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks a format from a file extension. Anything that is not .toml
// is read as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// LoadFile reads and builds the menu tree stored at path.
func LoadFile(path string) (*Tree, File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, File{}, fmt.Errorf("read menu file: %w", err)
	}
	return Parse(data, FormatFor(path))
}

// Parse decodes data and builds a tree from it.
func Parse(data []byte, format Format) (*Tree, File, error) {
	var file File
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, File{}, fmt.Errorf("decode toml menu: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, File{}, fmt.Errorf("decode yaml menu: %w", err)
		}
	}
	tree, err := Build(file)
	if err != nil {
		return nil, File{}, err
	}
	return tree, file, nil
}

// Build turns a decoded menu file into a tree.
func Build(file File) (*Tree, error) {
	if len(file.Items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrInvalidMenu)
	}
	tree := NewTree()
	if err := addDefs(tree, Root, file.Items, nil); err != nil {
		return nil, err
	}
	return tree, nil
}

func addDefs(tree *Tree, parent Parent, defs []ItemDef, path []string) error {
	for _, def := range defs {
		name := strings.TrimSpace(def.Name)
		where := strings.Join(append(path, name), "/")
		if name == "" {
			return fmt.Errorf("%w: item under %q has no name", ErrInvalidMenu, strings.Join(path, "/"))
		}
		node, err := nodeFor(name, def)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidMenu, where, err)
		}
		id, err := tree.Add(parent, node)
		if err != nil {
			return err
		}
		if err := addDefs(tree, Ref(id), def.Children, append(path, name)); err != nil {
			return err
		}
	}
	return nil
}

func nodeFor(name string, def ItemDef) (Node, error) {
	kinds := 0
	for _, set := range []bool{def.Run != "", def.Value != nil, def.Exit} {
		if set {
			kinds++
		}
	}
	if kinds > 1 {
		return Node{}, errors.New("run, value and exit are mutually exclusive")
	}
	switch {
	case def.Exit:
		return ExitItem(name), nil
	case def.Value != nil:
		return ValueItem(name, *def.Value), nil
	case def.Run != "":
		return Node{Name: name, Action: ShellAction(def.Run, def.Returns), Returns: def.Returns}, nil
	case def.Returns:
		return Node{}, errors.New("returns needs a run command")
	}
	return Node{Name: name}, nil
}

// ShellAction runs command through sh -c. Stdout and stderr are copied to the
// action output; when capture is set the trimmed stdout is also the result.
func ShellAction(command string, capture bool) Action {
	return func(ctx context.Context, out io.Writer) (any, error) {
		cmd := exec.CommandContext(ctx, "sh", "-c", command)
		var stdout bytes.Buffer
		if capture {
			cmd.Stdout = io.MultiWriter(out, &stdout)
		} else {
			cmd.Stdout = out
		}
		cmd.Stderr = out
		if err := cmd.Run(); err != nil {
			return nil, fmt.Errorf("run %q: %w", command, err)
		}
		if !capture {
			return nil, nil
		}
		return strings.TrimSpace(stdout.String()), nil
	}
}
