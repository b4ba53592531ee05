/*
Package yaml provides methods to parse attribute.Attribute
specifications, also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/iRapha/decision-trees/attribute"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadAttributes takes a slice of bytes with an attribute specification
in YML and returns a slice of attributes parsed from it, a generator
building the binary test declared for each attribute, or an error.

The YML is expected to be an object containing an attributes property.
The value for this should be an object with a property for each
attribute with its name and either:
  * the string value 'bool' for boolean attributes,
  * an object with a 'threshold' number for numeric attributes, split
    at the threshold,
  * an object with a 'categories' list and a 'pivot' value for
    categorical attributes, split on equality with the pivot.

Attributes are returned sorted by name: the slice order is the
tie-breaking order during attribute selection, so it must not depend
on YML map iteration.
*/
func ReadAttributes(md []byte) ([]attribute.Attribute, attribute.Generator, error) {
	metadata := struct {
		Attributes map[string]interface{}
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing yml attributes: %v", err)
	}
	if metadata.Attributes == nil {
		return nil, nil, fmt.Errorf("metadata file has no attribute information")
	}
	names := make([]string, 0, len(metadata.Attributes))
	for an := range metadata.Attributes {
		names = append(names, an)
	}
	sort.Strings(names)
	attributes := []attribute.Attribute{}
	thresholds := make(map[string]float64)
	pivots := make(map[string]string)
	for _, an := range names {
		switch declaration := metadata.Attributes[an].(type) {
		case string:
			if declaration != "bool" {
				return nil, nil, fmt.Errorf("invalid attribute declaration %q for %s", declaration, an)
			}
			attributes = append(attributes, attribute.NewBool(an))
		case map[interface{}]interface{}:
			a, err := parseAttributeObject(an, declaration, thresholds, pivots)
			if err != nil {
				return nil, nil, err
			}
			attributes = append(attributes, a)
		default:
			return nil, nil, fmt.Errorf("invalid attribute declaration of type %T for %s", declaration, an)
		}
	}
	return attributes, attribute.NewGenerator(thresholds, pivots), nil
}

/*
ReadAttributesFromFile takes a filepath string, reads its contents and
uses ReadAttributes to parse it and return a slice of parsed
attributes and their test generator or an error. If the file indicated
by the filepath cannot be opened for reading an error will be
returned.
*/
func ReadAttributesFromFile(filepath string) ([]attribute.Attribute, attribute.Generator, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading attributes yml file %s: %v", filepath, err)
	}
	attributes, generator, err := ReadAttributes(md)
	if err != nil {
		err = fmt.Errorf("parsing attributes yml file %s: %v", filepath, err)
	}
	return attributes, generator, err
}

func parseAttributeObject(name string, declaration map[interface{}]interface{}, thresholds map[string]float64, pivots map[string]string) (attribute.Attribute, error) {
	if threshold, ok := declaration["threshold"]; ok {
		t, err := parseNumber(threshold)
		if err != nil {
			return nil, fmt.Errorf("invalid threshold for numeric attribute %s: %v", name, err)
		}
		thresholds[name] = t
		return attribute.NewNumeric(name), nil
	}
	categories, ok := declaration["categories"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("attribute %s declares neither a threshold nor categories", name)
	}
	stringCs := []string{}
	for _, c := range categories {
		stringCs = append(stringCs, fmt.Sprintf("%v", c))
	}
	pivot, ok := declaration["pivot"]
	if !ok {
		return nil, fmt.Errorf("categorical attribute %s declares no pivot", name)
	}
	pivots[name] = fmt.Sprintf("%v", pivot)
	return attribute.NewCategorical(name, stringCs), nil
}

func parseNumber(v interface{}) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0.0, fmt.Errorf("expected a number, got %T value", v)
}
