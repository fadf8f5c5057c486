package config

// SafeErrorMessage devolve o detalhe do erro em desenvolvimento e a mensagem
// generica em producao, para nao vazar detalhes internos ao cliente.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
