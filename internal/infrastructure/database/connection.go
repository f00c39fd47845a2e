package database

import (
	"context"

	"gorm.io/gorm"
)

// Marca no contexto que o timezone da sessão já foi ajustado, para o callback
// não recursar sobre o próprio Exec.
type timezoneAjustadoKey struct{}

// timezoneCallback fixa o timezone da sessão antes de cada consulta. Datas de
// preenchimento e de assinatura são sempre interpretadas em horário de Brasília.
func timezoneCallback() func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if _, ok := db.Statement.Context.Value(timezoneAjustadoKey{}).(bool); ok {
			return
		}

		ctx := context.WithValue(db.Statement.Context, timezoneAjustadoKey{}, true)
		db.WithContext(ctx).Exec("SET timezone = 'America/Sao_Paulo'")
	}
}

// RegisterCallbacks registra os callbacks de sessão no GORM. Só o fluxo de
// query recebe o ajuste de timezone, para não onerar as escritas.
func RegisterCallbacks(db *gorm.DB) {
	db.Callback().Query().Before("gorm:query").Register("set_timezone_before_query", timezoneCallback())
}
