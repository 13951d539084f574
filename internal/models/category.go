package models

import "encoding/json"

// PropertyDefinition is a named attribute with an enumerated set of values,
// e.g. "size": ["S", "M", "L"].
type PropertyDefinition struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Category groups products. ParentID is the stored reference; Parent is only
// set when a listing populates it.
type Category struct {
	ID         string               `json:"_id"`
	Name       string               `json:"name"`
	ParentID   string               `json:"-"`
	Parent     *Category            `json:"-"`
	Properties []PropertyDefinition `json:"properties"`
}

// MarshalJSON writes "parent" as the populated document when available and
// falls back to the raw identifier otherwise.
func (c Category) MarshalJSON() ([]byte, error) {
	type plain Category
	out := struct {
		plain
		Parent any `json:"parent,omitempty"`
	}{plain: plain(c)}
	switch {
	case c.Parent != nil:
		out.Parent = c.Parent
	case c.ParentID != "":
		out.Parent = c.ParentID
	}
	if out.Properties == nil {
		out.Properties = []PropertyDefinition{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts "parent" either as an identifier or as a populated
// document carrying an "_id".
func (c *Category) UnmarshalJSON(data []byte) error {
	type plain Category
	var in struct {
		plain
		Parent json.RawMessage `json:"parent"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*c = Category(in.plain)
	if len(in.Parent) == 0 || string(in.Parent) == "null" {
		return nil
	}
	var id string
	if err := json.Unmarshal(in.Parent, &id); err == nil {
		c.ParentID = id
		return nil
	}
	var parent Category
	if err := json.Unmarshal(in.Parent, &parent); err != nil {
		return err
	}
	c.ParentID = parent.ID
	c.Parent = &parent
	return nil
}
