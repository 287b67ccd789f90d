package utils

import (
	"reflect"
)

// ColumnList returns the list of "db" tagged column names of a dbmodel
// struct, in declaration order. Embedded structs are flattened.
func ColumnList[DBModel any]() []string {
	var model DBModel
	return columnsOf(reflect.TypeOf(model))
}

func columnsOf(t reflect.Type) []string {
	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			columns = append(columns, columnsOf(field.Type)...)
			continue
		}
		if tag, ok := field.Tag.Lookup("db"); ok && tag != "-" {
			columns = append(columns, tag)
		}
	}
	return columns
}
