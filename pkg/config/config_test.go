package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestGetInt_ValorNoNumericoCaeAlDefault(t *testing.T) {
	cases := []struct {
		name   string
		set    interface{}
		want   int
		unset  bool
		defVal int
	}{
		{name: "entero nativo", set: 9090, want: 9090, defVal: 8080},
		{name: "string numérico", set: "8081", want: 8081, defVal: 8080},
		{name: "string con espacios", set: " 8082 ", want: 8082, defVal: 8080},
		{name: "string no numérico usa el default", set: "abc", want: 8080, defVal: 8080},
		{name: "string vacío usa el default", set: "", want: 8080, defVal: 8080},
		{name: "clave ausente usa el default", unset: true, want: 8080, defVal: 8080},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := viper.New()
			if !tc.unset {
				v.Set("HTTP_PORT", tc.set)
			}
			assert.Equal(t, tc.want, getInt(v, "HTTP_PORT", tc.defVal))
		})
	}
}

func TestGetString_RespetaDefaultSoloSiNoHayValor(t *testing.T) {
	v := viper.New()
	assert.Equal(t, "development", getString(v, "APP_ENV", "development"))

	v.Set("APP_ENV", "production")
	assert.Equal(t, "production", getString(v, "APP_ENV", "development"))
}
