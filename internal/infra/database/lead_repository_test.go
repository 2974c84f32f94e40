package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLeadFilter(t *testing.T) {
	tests := []struct {
		name      string
		filter    ListFilter
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name:      "sem filtros",
			filter:    ListFilter{},
			wantWhere: "",
			wantArgs:  []interface{}{},
		},
		{
			name:      "status all desliga o filtro",
			filter:    ListFilter{Status: "all"},
			wantWhere: "",
			wantArgs:  []interface{}{},
		},
		{
			name:      "status exato",
			filter:    ListFilter{Status: "qualified"},
			wantWhere: " WHERE status = $1",
			wantArgs:  []interface{}{"qualified"},
		},
		{
			name:      "busca em nome, email e telefone",
			filter:    ListFilter{Search: "ana"},
			wantWhere: " WHERE (name ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1)",
			wantArgs:  []interface{}{"%ana%"},
		},
		{
			name:      "status e busca combinados",
			filter:    ListFilter{Status: "new", Search: "ana"},
			wantWhere: " WHERE status = $1 AND (name ILIKE $2 OR email ILIKE $2 OR phone ILIKE $2)",
			wantArgs:  []interface{}{"new", "%ana%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildLeadFilter(tt.filter)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestNullString(t *testing.T) {
	assert.Nil(t, nullString(""))

	s := nullString("(11) 99999-9999")
	assert.NotNil(t, s)
	assert.Equal(t, "(11) 99999-9999", *s)
}
