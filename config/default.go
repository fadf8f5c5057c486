package config

import _ "embed"

// DefaultConfigYAML e a configuracao embutida no binario. Arquivos externos
// e variaveis de ambiente CONTABIL_* tem precedencia sobre ela.
//
//go:embed default.yaml
var DefaultConfigYAML []byte
