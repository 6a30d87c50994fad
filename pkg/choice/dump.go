package choice

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// dump is the YAML shape of every union: the 1-based active slot and its value.
type dump struct {
	Chosen int `yaml:"chosen"`
	Value  any `yaml:"value"`
}

type rawDump struct {
	Chosen int       `yaml:"chosen"`
	Value  yaml.Node `yaml:"value"`
}

// Dump renders c as YAML, for example
//
//	chosen: 2
//	value: foo
func Dump(c Choice) (string, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeDump(node *yaml.Node, arity int) (rawDump, error) {
	var raw rawDump
	if err := node.Decode(&raw); err != nil {
		return raw, err
	}
	if raw.Chosen < 1 || raw.Chosen > arity {
		return raw, fmt.Errorf("choice: chosen slot %d out of range 1..%d", raw.Chosen, arity)
	}
	return raw, nil
}

func decodeSlot[T any](node *yaml.Node) (T, error) {
	var v T
	err := node.Decode(&v)
	return v, err
}

func (c Of1[T]) MarshalYAML() (any, error) {
	return dump{Chosen: 1, Value: c.value}, nil
}

func (c *Of1[T]) UnmarshalYAML(node *yaml.Node) error {
	raw, err := decodeDump(node, 1)
	if err != nil {
		return err
	}
	v, err := decodeSlot[T](&raw.Value)
	if err != nil {
		return err
	}
	*c = Choice1Of1(v)
	return nil
}

func (c Of2[T1, T2]) MarshalYAML() (any, error) {
	return dump{Chosen: c.Slot(), Value: c.payload()}, nil
}

func (c *Of2[T1, T2]) UnmarshalYAML(node *yaml.Node) error {
	raw, err := decodeDump(node, 2)
	if err != nil {
		return err
	}
	switch raw.Chosen {
	case 1:
		v, err := decodeSlot[T1](&raw.Value)
		if err != nil {
			return err
		}
		*c = Choice1Of2[T1, T2](v)
	case 2:
		v, err := decodeSlot[T2](&raw.Value)
		if err != nil {
			return err
		}
		*c = Choice2Of2[T1, T2](v)
	}
	return nil
}

func (c Of3[T1, T2, T3]) MarshalYAML() (any, error) {
	return dump{Chosen: c.Slot(), Value: c.payload()}, nil
}

func (c *Of3[T1, T2, T3]) UnmarshalYAML(node *yaml.Node) error {
	raw, err := decodeDump(node, 3)
	if err != nil {
		return err
	}
	switch raw.Chosen {
	case 1:
		v, err := decodeSlot[T1](&raw.Value)
		if err != nil {
			return err
		}
		*c = Choice1Of3[T1, T2, T3](v)
	case 2:
		v, err := decodeSlot[T2](&raw.Value)
		if err != nil {
			return err
		}
		*c = Choice2Of3[T1, T2, T3](v)
	case 3:
		v, err := decodeSlot[T3](&raw.Value)
		if err != nil {
			return err
		}
		*c = Choice3Of3[T1, T2, T3](v)
	}
	return nil
}

func (c Of4[T1, T2, T3, T4]) MarshalYAML() (any, error) {
	return dump{Chosen: c.Slot(), Value: c.payload()}, nil
}

func (c *Of4[T1, T2, T3, T4]) UnmarshalYAML(node *yaml.Node) error {
	raw, err := decodeDump(node, 4)
	if err != nil {
		return err
	}
	switch raw.Chosen {
	case 1:
		v, err := decodeSlot[T1](&raw.Value)
		if err != nil {
			return err
		}
		*c = Choice1Of4[T1, T2, T3, T4](v)
	case 2:
		v, err := decodeSlot[T2](&raw.Value)
		if err != nil {
			return err
		}
		*c = Choice2Of4[T1, T2, T3, T4](v)
	case 3:
		v, err := decodeSlot[T3](&raw.Value)
		if err != nil {
			return err
		}
		*c = Choice3Of4[T1, T2, T3, T4](v)
	case 4:
		v, err := decodeSlot[T4](&raw.Value)
		if err != nil {
			return err
		}
		*c = Choice4Of4[T1, T2, T3, T4](v)
	}
	return nil
}

func (c Of5[T1, T2, T3, T4, T5]) MarshalYAML() (any, error) {
	return dump{Chosen: c.Slot(), Value: c.payload()}, nil
}

func (c *Of5[T1, T2, T3, T4, T5]) UnmarshalYAML(node *yaml.Node) error {
	raw, err := decodeDump(node, 5)
	if err != nil {
		return err
	}
	switch raw.Chosen {
	case 1:
		v, err := decodeSlot[T1](&raw.Value)
		if err != nil {
			return err
		}
		*c = Choice1Of5[T1, T2, T3, T4, T5](v)
	case 2:
		v, err := decodeSlot[T2](&raw.Value)
		if err != nil {
			return err
		}
		*c = Choice2Of5[T1, T2, T3, T4, T5](v)
	case 3:
		v, err := decodeSlot[T3](&raw.Value)
		if err != nil {
			return err
		}
		*c = Choice3Of5[T1, T2, T3, T4, T5](v)
	case 4:
		v, err := decodeSlot[T4](&raw.Value)
		if err != nil {
			return err
		}
		*c = Choice4Of5[T1, T2, T3, T4, T5](v)
	case 5:
		v, err := decodeSlot[T5](&raw.Value)
		if err != nil {
			return err
		}
		*c = Choice5Of5[T1, T2, T3, T4, T5](v)
	}
	return nil
}
