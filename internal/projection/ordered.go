package projection

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// SkillProgression encodes as a JSON object keyed by skill name, keeping the
// projection order of its entries.
type SkillProgression []SkillProgress

// Names returns the skill names in order.
func (s SkillProgression) Names() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.Name
	}
	return out
}

// Get looks a skill up by exact name.
func (s SkillProgression) Get(name string) (SkillProgress, bool) {
	for _, p := range s {
		if p.Name == name {
			return p, true
		}
	}
	return SkillProgress{}, false
}

func (s SkillProgression) MarshalJSON() ([]byte, error) {
	keys := make([]string, len(s))
	values := make([]any, len(s))
	for i, p := range s {
		keys[i], values[i] = p.Name, p
	}
	return encodeObject(keys, values)
}

func (s *SkillProgression) UnmarshalJSON(data []byte) error {
	out := SkillProgression{}
	err := decodeObject(data, func(key string, raw json.RawMessage) error {
		var p SkillProgress
		if err := json.Unmarshal(raw, &p); err != nil {
			return err
		}
		p.Name = key
		out = append(out, p)
		return nil
	})
	if err != nil {
		return fmt.Errorf("skill progression: %w", err)
	}
	*s = out
	return nil
}

// SkillLevels encodes as a JSON object of name to level, in order.
type SkillLevels []SkillLevel

func (s SkillLevels) MarshalJSON() ([]byte, error) {
	keys := make([]string, len(s))
	values := make([]any, len(s))
	for i, l := range s {
		keys[i], values[i] = l.Name, l.Level
	}
	return encodeObject(keys, values)
}

func (s *SkillLevels) UnmarshalJSON(data []byte) error {
	out := SkillLevels{}
	err := decodeObject(data, func(key string, raw json.RawMessage) error {
		var level int
		if err := json.Unmarshal(raw, &level); err != nil {
			return err
		}
		out = append(out, SkillLevel{Name: key, Level: level})
		return nil
	})
	if err != nil {
		return fmt.Errorf("skill levels: %w", err)
	}
	*s = out
	return nil
}

func encodeObject(keys []string, values []any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func decodeObject(data []byte, each func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("expected JSON object")
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return errors.New("expected object key")
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if err := each(key, raw); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}
