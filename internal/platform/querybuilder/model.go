package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// ColumnsOf lists the db-tagged columns of a table model, qualified with
// alias when one is given. Fields tagged "-" are skipped.
func ColumnsOf(model any, alias string) ([]string, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("db"))
		if tag == "" || tag == "-" {
			continue
		}
		col := strings.TrimSpace(strings.Split(tag, ",")[0])
		if col == "" || col == "-" {
			continue
		}
		if alias != "" {
			col = alias + "." + col
		}
		cols = append(cols, col)
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("model has no db columns")
	}
	return cols, nil
}

// MustColumnsOf is ColumnsOf for package-level table models.
func MustColumnsOf(model any, alias string) []string {
	cols, err := ColumnsOf(model, alias)
	if err != nil {
		panic(err)
	}
	return cols
}
