package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldKind is the input type a form field is rendered as.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindNumber   FieldKind = "number"
	KindBool     FieldKind = "bool"
	KindSelect   FieldKind = "select"
	KindDatetime FieldKind = "datetime"
)

// Field is one input on a service's request form.
type Field struct {
	Name     string    `json:"name"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

// Service is an offerable service type.
type Service struct {
	Name   string  `json:"name"`
	Label  string  `json:"label"`
	Fields []Field `json:"fields"`
}

var titler = cases.Title(language.English)

// Label turns a machine name such as "floor_plan" into "Floor Plan".
func Label(name string) string {
	return titler.String(strings.ReplaceAll(name, "_", " "))
}

// every service asks for these, in this order
var baseFields = []Field{
	{Name: "maxPrice", Kind: KindNumber, Required: false},
	{Name: "datetime", Kind: KindDatetime, Required: false},
	{Name: "notes", Kind: KindText, Required: false},
}

func withBase(extra ...Field) []Field {
	fields := make([]Field, 0, len(baseFields)+len(extra))
	fields = append(fields, baseFields...)
	return append(fields, extra...)
}

var services = []Service{
	{Name: "photography", Fields: withBase(
		Field{Name: "photoCount", Kind: KindNumber, Required: true},
		Field{Name: "twilight", Kind: KindBool},
	)},
	{Name: "videography", Fields: withBase(
		Field{Name: "style", Kind: KindSelect, Required: true, Options: []string{"walkthrough", "cinematic", "social"}},
		Field{Name: "lengthMinutes", Kind: KindNumber},
	)},
	{Name: "drone", Fields: withBase(
		Field{Name: "media", Kind: KindSelect, Required: true, Options: []string{"photo", "video", "both"}},
	)},
	{Name: "floor_plan", Fields: withBase(
		Field{Name: "squareFeet", Kind: KindNumber, Required: true},
		Field{Name: "format", Kind: KindSelect, Options: []string{"2d", "3d"}},
	)},
	{Name: "virtual_tour", Fields: withBase(
		Field{Name: "squareFeet", Kind: KindNumber, Required: true},
	)},
	{Name: "inspection", Fields: withBase(
		Field{Name: "inspectionType", Kind: KindSelect, Required: true, Options: []string{"general", "termite", "radon", "mold", "sewer"}},
		Field{Name: "yearBuilt", Kind: KindNumber},
	)},
	{Name: "staging", Fields: withBase(
		Field{Name: "rooms", Kind: KindNumber, Required: true},
		Field{Name: "occupied", Kind: KindBool},
	)},
	{Name: "cleaning", Fields: withBase(
		Field{Name: "depth", Kind: KindSelect, Required: true, Options: []string{"standard", "deep", "move_out"}},
	)},
	{Name: "signage", Fields: withBase(
		Field{Name: "postType", Kind: KindSelect, Options: []string{"standard", "premium"}},
	)},
	{Name: "appraisal", Fields: withBase(
		Field{Name: "purpose", Kind: KindSelect, Required: true, Options: []string{"sale", "refinance", "estate"}},
	)},
}

var byName map[string]Service

func init() {
	byName = make(map[string]Service, len(services))
	for i := range services {
		services[i].Label = Label(services[i].Name)
		byName[services[i].Name] = services[i]
	}
}

// All returns the catalog in display order. Callers get their own copy of the slice.
func All() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// Lookup finds a service type by machine name.
func Lookup(name string) (Service, bool) {
	s, ok := byName[name]
	return s, ok
}

// Valid reports whether name is an offerable service type.
func Valid(name string) bool {
	_, ok := byName[name]
	return ok
}
