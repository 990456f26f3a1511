package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv_Basic(t *testing.T) {
	t.Setenv("EXPAND_HOST", "db.internal")
	t.Setenv("EXPAND_PORT", "5432")

	out := ExpandEnv([]byte("dsn: {{.EXPAND_HOST}}:{{.EXPAND_PORT}}"))
	assert.Equal(t, "dsn: db.internal:5432", string(out))
}

func TestExpandEnv_MissingVarExpandsEmpty(t *testing.T) {
	out := ExpandEnv([]byte("token: '{{.EXPAND_DOES_NOT_EXIST}}'"))
	assert.Equal(t, "token: ''", string(out))
}

func TestExpandEnv_DollarSignsUntouched(t *testing.T) {
	in := []byte(`pattern: "^(增持|回购).*$"`)
	assert.Equal(t, in, ExpandEnv(in))
}

func TestExpandEnv_MalformedTemplatePassesThrough(t *testing.T) {
	in := []byte("value: {{.UNCLOSED")
	assert.Equal(t, in, ExpandEnv(in))
}
