package cli

import (
	"encoding/json"
	"fmt"
)

// JMap is a generic resource
type JMap map[string]interface{}

// Name returns the name value
func (j JMap) Name() string {
	if name, ok := j["name"]; ok {
		return name.(string)
	}
	return ""
}

// String marshals into a json string
func (j JMap) String() string {
	buf, err := json.Marshal(&j)
	if err != nil {
		return ""
	}
	return string(buf)
}

// Print prints either the json string or just the name
func (j JMap) Print(json bool) {
	if json {
		fmt.Println(j)
	} else {
		fmt.Println(j.Name())
	}
}

// JMapSlice is an array of generic resources
type JMapSlice []JMap

// Len returns the length of the array
func (js JMapSlice) Len() int {
	return len(js)
}

// Less returns the comparsion of two elements
func (js JMapSlice) Less(i, j int) bool {
	return js[i].Name() < js[j].Name()
}

// Swap swaps two elements
func (js JMapSlice) Swap(i, j int) {
	js[j], js[i] = js[i], js[j]
}
