package dto

import (
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"gorm.io/datatypes"
)

type CreateAlternativaCampoDTO struct {
	CampoFormularioID string `json:"campo_formulario_id" validate:"required,uuid"`
	CodigoAlternativa string `json:"codigo_alternativa" validate:"required,max=50"`
	TextoAlternativa  string `json:"texto_alternativa" validate:"required"`
	Descricao         string `json:"descricao,omitempty"`
	Valor             string `json:"valor" validate:"required,max=255"`
	Ordem             int    `json:"ordem,omitempty" validate:"omitempty,min=1"`

	Icone     string `json:"icone,omitempty" validate:"omitempty,max=50"`
	Cor       string `json:"cor,omitempty" validate:"omitempty,max=50"`
	ImagemURL string `json:"imagem_url,omitempty" validate:"omitempty,max=500"`

	SelecionadoPadrao     bool `json:"selecionado_padrao,omitempty"`
	PermiteTextoAdicional bool `json:"permite_texto_adicional,omitempty"`
	Exclusiva             bool `json:"exclusiva,omitempty"`

	Pontuacao *float64 `json:"pontuacao,omitempty"`
	Peso      *float64 `json:"peso,omitempty"`

	CamposMostrar      datatypes.JSON `json:"campos_mostrar,omitempty"`
	CamposOcultar      datatypes.JSON `json:"campos_ocultar,omitempty"`
	CamposObrigatorios datatypes.JSON `json:"campos_obrigatorios,omitempty"`

	CodigoExterno string `json:"codigo_externo,omitempty" validate:"omitempty,max=255"`
	Categoria     string `json:"categoria,omitempty" validate:"omitempty,max=100"`

	Metadados   datatypes.JSON `json:"metadados,omitempty"`
	Observacoes string         `json:"observacoes,omitempty"`

	// Preenchido pelo middleware de autenticação, nunca pelo corpo
	CreatedBy string `json:"-"`
}

func (d *CreateAlternativaCampoDTO) ToEntity() *entities.AlternativaCampo {
	alternativa := &entities.AlternativaCampo{
		CampoFormularioID:     d.CampoFormularioID,
		CodigoAlternativa:     d.CodigoAlternativa,
		TextoAlternativa:      d.TextoAlternativa,
		Descricao:             d.Descricao,
		Valor:                 d.Valor,
		Ordem:                 d.Ordem,
		Icone:                 d.Icone,
		Cor:                   d.Cor,
		ImagemURL:             d.ImagemURL,
		SelecionadoPadrao:     d.SelecionadoPadrao,
		PermiteTextoAdicional: d.PermiteTextoAdicional,
		Exclusiva:             d.Exclusiva,
		Pontuacao:             d.Pontuacao,
		Peso:                  1.0,
		CamposMostrar:         d.CamposMostrar,
		CamposOcultar:         d.CamposOcultar,
		CamposObrigatorios:    d.CamposObrigatorios,
		CodigoExterno:         d.CodigoExterno,
		Categoria:             d.Categoria,
		Status:                entities.StatusAlternativaAtiva,
		Ativo:                 true,
		VisivelImpressao:      true,
		VisivelPortal:         true,
		Metadados:             d.Metadados,
		Observacoes:           d.Observacoes,
		CreatedBy:             d.CreatedBy,
	}
	if d.Peso != nil {
		alternativa.Peso = *d.Peso
	}
	return alternativa
}

type UpdateAlternativaCampoDTO struct {
	CodigoAlternativa *string `json:"codigo_alternativa,omitempty" validate:"omitempty,max=50"`
	TextoAlternativa  *string `json:"texto_alternativa,omitempty"`
	Descricao         *string `json:"descricao,omitempty"`
	Valor             *string `json:"valor,omitempty" validate:"omitempty,max=255"`
	Ordem             *int    `json:"ordem,omitempty" validate:"omitempty,min=1"`

	Icone     *string `json:"icone,omitempty" validate:"omitempty,max=50"`
	Cor       *string `json:"cor,omitempty" validate:"omitempty,max=50"`
	ImagemURL *string `json:"imagem_url,omitempty" validate:"omitempty,max=500"`

	PermiteTextoAdicional *bool `json:"permite_texto_adicional,omitempty"`
	Exclusiva             *bool `json:"exclusiva,omitempty"`

	Pontuacao *float64 `json:"pontuacao,omitempty"`
	Peso      *float64 `json:"peso,omitempty"`

	CamposMostrar      datatypes.JSON `json:"campos_mostrar,omitempty"`
	CamposOcultar      datatypes.JSON `json:"campos_ocultar,omitempty"`
	CamposObrigatorios datatypes.JSON `json:"campos_obrigatorios,omitempty"`

	CodigoExterno *string `json:"codigo_externo,omitempty" validate:"omitempty,max=255"`
	Categoria     *string `json:"categoria,omitempty" validate:"omitempty,max=100"`

	VisivelImpressao *bool `json:"visivel_impressao,omitempty"`
	VisivelPortal    *bool `json:"visivel_portal,omitempty"`

	Metadados   datatypes.JSON `json:"metadados,omitempty"`
	Observacoes *string        `json:"observacoes,omitempty"`

	UpdatedBy string `json:"-"`
}

func (d *UpdateAlternativaCampoDTO) ApplyTo(alternativa *entities.AlternativaCampo) {
	if d.CodigoAlternativa != nil {
		alternativa.CodigoAlternativa = *d.CodigoAlternativa
	}
	if d.TextoAlternativa != nil {
		alternativa.TextoAlternativa = *d.TextoAlternativa
	}
	if d.Descricao != nil {
		alternativa.Descricao = *d.Descricao
	}
	if d.Valor != nil {
		alternativa.Valor = *d.Valor
	}
	if d.Ordem != nil {
		alternativa.Ordem = *d.Ordem
	}
	if d.Icone != nil {
		alternativa.Icone = *d.Icone
	}
	if d.Cor != nil {
		alternativa.Cor = *d.Cor
	}
	if d.ImagemURL != nil {
		alternativa.ImagemURL = *d.ImagemURL
	}
	if d.PermiteTextoAdicional != nil {
		alternativa.PermiteTextoAdicional = *d.PermiteTextoAdicional
	}
	if d.Exclusiva != nil {
		alternativa.Exclusiva = *d.Exclusiva
	}
	if d.Pontuacao != nil {
		alternativa.Pontuacao = d.Pontuacao
	}
	if d.Peso != nil {
		alternativa.Peso = *d.Peso
	}
	if d.CamposMostrar != nil {
		alternativa.CamposMostrar = d.CamposMostrar
	}
	if d.CamposOcultar != nil {
		alternativa.CamposOcultar = d.CamposOcultar
	}
	if d.CamposObrigatorios != nil {
		alternativa.CamposObrigatorios = d.CamposObrigatorios
	}
	if d.CodigoExterno != nil {
		alternativa.CodigoExterno = *d.CodigoExterno
	}
	if d.Categoria != nil {
		alternativa.Categoria = *d.Categoria
	}
	if d.VisivelImpressao != nil {
		alternativa.VisivelImpressao = *d.VisivelImpressao
	}
	if d.VisivelPortal != nil {
		alternativa.VisivelPortal = *d.VisivelPortal
	}
	if d.Metadados != nil {
		alternativa.Metadados = d.Metadados
	}
	if d.Observacoes != nil {
		alternativa.Observacoes = *d.Observacoes
	}
	if d.UpdatedBy != "" {
		alternativa.UpdatedBy = d.UpdatedBy
	}
}

// ImportarAlternativaItemDTO é um item do lote de importação
type ImportarAlternativaItemDTO struct {
	Codigo    string   `json:"codigo" validate:"required,max=50"`
	Valor     string   `json:"valor" validate:"required,max=255"`
	Rotulo    string   `json:"rotulo" validate:"required"`
	Descricao string   `json:"descricao,omitempty"`
	Score     *float64 `json:"score,omitempty"`
}

type ImportarAlternativasDTO struct {
	Alternativas []ImportarAlternativaItemDTO `json:"alternativas" validate:"required,min=1,dive"`
}

type UpdateStatusAlternativaDTO struct {
	Status entities.StatusAlternativa `json:"status" validate:"required,oneof=ativa inativa"`
}
