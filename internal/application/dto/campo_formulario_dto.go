package dto

import (
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"gorm.io/datatypes"
)

type CreateCampoFormularioDTO struct {
	FormularioID    string                   `json:"formulario_id" validate:"required,uuid"`
	TipoCampoPadrao entities.TipoCampoPadrao `json:"tipo_campo_padrao,omitempty"`
	CodigoCampo     string                   `json:"codigo_campo" validate:"required,max=50"`
	NomeCampo       string                   `json:"nome_campo" validate:"required,max=255"`
	Descricao       string                   `json:"descricao,omitempty"`
	Placeholder     string                   `json:"placeholder,omitempty"`
	TextoAjuda      string                   `json:"texto_ajuda,omitempty"`
	TipoCampo       entities.TipoCampo       `json:"tipo_campo" validate:"required"`
	Ordem           int                      `json:"ordem,omitempty" validate:"omitempty,min=1"`

	Obrigatorio    bool     `json:"obrigatorio,omitempty"`
	SomenteLeitura bool     `json:"somente_leitura,omitempty"`
	TamanhoMinimo  *int     `json:"tamanho_minimo,omitempty" validate:"omitempty,min=0"`
	TamanhoMaximo  *int     `json:"tamanho_maximo,omitempty" validate:"omitempty,min=0"`
	ValorMinimo    *float64 `json:"valor_minimo,omitempty"`
	ValorMaximo    *float64 `json:"valor_maximo,omitempty"`
	Mascara        string   `json:"mascara,omitempty" validate:"omitempty,max=255"`
	Regex          string   `json:"regex,omitempty" validate:"omitempty,max=500"`
	MensagemErro   string   `json:"mensagem_erro,omitempty"`

	ValorPadrao            string `json:"valor_padrao,omitempty"`
	PermiteMultiplaSelecao bool   `json:"permite_multipla_selecao,omitempty"`
	PermiteOutro           bool   `json:"permite_outro,omitempty"`

	CondicoesVisibilidade    datatypes.JSON `json:"condicoes_visibilidade,omitempty"`
	CondicoesObrigatoriedade datatypes.JSON `json:"condicoes_obrigatoriedade,omitempty"`
	CondicoesValidacao       datatypes.JSON `json:"condicoes_validacao,omitempty"`
	FormulaCalculo           string         `json:"formula_calculo,omitempty"`
	CamposDependentes        datatypes.JSON `json:"campos_dependentes,omitempty"`
	DependeDe                datatypes.JSON `json:"depende_de,omitempty"`

	UnidadeMedida     string         `json:"unidade_medida,omitempty" validate:"omitempty,max=50"`
	ValoresReferencia datatypes.JSON `json:"valores_referencia,omitempty"`

	Metadados   datatypes.JSON `json:"metadados,omitempty"`
	Observacoes string         `json:"observacoes,omitempty"`

	// Preenchido pelo middleware de autenticação, nunca pelo corpo
	CreatedBy string `json:"-"`
}

func (d *CreateCampoFormularioDTO) ToEntity() *entities.CampoFormulario {
	campo := &entities.CampoFormulario{
		FormularioID:             d.FormularioID,
		TipoCampoPadrao:          d.TipoCampoPadrao,
		CodigoCampo:              d.CodigoCampo,
		NomeCampo:                d.NomeCampo,
		Descricao:                d.Descricao,
		Placeholder:              d.Placeholder,
		TextoAjuda:               d.TextoAjuda,
		TipoCampo:                d.TipoCampo,
		Ordem:                    d.Ordem,
		Obrigatorio:              d.Obrigatorio,
		SomenteLeitura:           d.SomenteLeitura,
		TamanhoMinimo:            d.TamanhoMinimo,
		TamanhoMaximo:            d.TamanhoMaximo,
		ValorMinimo:              d.ValorMinimo,
		ValorMaximo:              d.ValorMaximo,
		Mascara:                  d.Mascara,
		Regex:                    d.Regex,
		MensagemErro:             d.MensagemErro,
		ValorPadrao:              d.ValorPadrao,
		PermiteMultiplaSelecao:   d.PermiteMultiplaSelecao,
		PermiteOutro:             d.PermiteOutro,
		CondicoesVisibilidade:    d.CondicoesVisibilidade,
		CondicoesObrigatoriedade: d.CondicoesObrigatoriedade,
		CondicoesValidacao:       d.CondicoesValidacao,
		FormulaCalculo:           d.FormulaCalculo,
		CamposDependentes:        d.CamposDependentes,
		DependeDe:                d.DependeDe,
		UnidadeMedida:            d.UnidadeMedida,
		ValoresReferencia:        d.ValoresReferencia,
		Status:                   entities.StatusCampoAtivo,
		Ativo:                    true,
		VisivelImpressao:         true,
		VisivelPortal:            true,
		Metadados:                d.Metadados,
		Observacoes:              d.Observacoes,
		CreatedBy:                d.CreatedBy,
	}
	if d.TipoCampoPadrao == "" {
		campo.TipoCampoPadrao = entities.TipoCampoPadraoCustomizado
	}
	return campo
}

type UpdateCampoFormularioDTO struct {
	CodigoCampo  *string             `json:"codigo_campo,omitempty" validate:"omitempty,max=50"`
	NomeCampo    *string             `json:"nome_campo,omitempty" validate:"omitempty,max=255"`
	Descricao    *string             `json:"descricao,omitempty"`
	Placeholder  *string             `json:"placeholder,omitempty"`
	TextoAjuda   *string             `json:"texto_ajuda,omitempty"`
	TipoCampo    *entities.TipoCampo `json:"tipo_campo,omitempty"`
	Ordem        *int                `json:"ordem,omitempty" validate:"omitempty,min=1"`

	Obrigatorio    *bool    `json:"obrigatorio,omitempty"`
	SomenteLeitura *bool    `json:"somente_leitura,omitempty"`
	TamanhoMinimo  *int     `json:"tamanho_minimo,omitempty" validate:"omitempty,min=0"`
	TamanhoMaximo  *int     `json:"tamanho_maximo,omitempty" validate:"omitempty,min=0"`
	ValorMinimo    *float64 `json:"valor_minimo,omitempty"`
	ValorMaximo    *float64 `json:"valor_maximo,omitempty"`
	Mascara        *string  `json:"mascara,omitempty" validate:"omitempty,max=255"`
	Regex          *string  `json:"regex,omitempty" validate:"omitempty,max=500"`
	MensagemErro   *string  `json:"mensagem_erro,omitempty"`

	ValorPadrao            *string `json:"valor_padrao,omitempty"`
	PermiteMultiplaSelecao *bool   `json:"permite_multipla_selecao,omitempty"`
	PermiteOutro           *bool   `json:"permite_outro,omitempty"`

	CondicoesVisibilidade    datatypes.JSON `json:"condicoes_visibilidade,omitempty"`
	CondicoesObrigatoriedade datatypes.JSON `json:"condicoes_obrigatoriedade,omitempty"`
	CondicoesValidacao       datatypes.JSON `json:"condicoes_validacao,omitempty"`
	FormulaCalculo           *string        `json:"formula_calculo,omitempty"`
	CamposDependentes        datatypes.JSON `json:"campos_dependentes,omitempty"`
	DependeDe                datatypes.JSON `json:"depende_de,omitempty"`

	UnidadeMedida     *string        `json:"unidade_medida,omitempty" validate:"omitempty,max=50"`
	ValoresReferencia datatypes.JSON `json:"valores_referencia,omitempty"`

	VisivelImpressao *bool `json:"visivel_impressao,omitempty"`
	VisivelPortal    *bool `json:"visivel_portal,omitempty"`

	Metadados   datatypes.JSON `json:"metadados,omitempty"`
	Observacoes *string        `json:"observacoes,omitempty"`

	UpdatedBy string `json:"-"`
}

func (d *UpdateCampoFormularioDTO) ApplyTo(campo *entities.CampoFormulario) {
	if d.CodigoCampo != nil {
		campo.CodigoCampo = *d.CodigoCampo
	}
	if d.NomeCampo != nil {
		campo.NomeCampo = *d.NomeCampo
	}
	if d.Descricao != nil {
		campo.Descricao = *d.Descricao
	}
	if d.Placeholder != nil {
		campo.Placeholder = *d.Placeholder
	}
	if d.TextoAjuda != nil {
		campo.TextoAjuda = *d.TextoAjuda
	}
	if d.TipoCampo != nil {
		campo.TipoCampo = *d.TipoCampo
	}
	if d.Ordem != nil {
		campo.Ordem = *d.Ordem
	}
	if d.Obrigatorio != nil {
		campo.Obrigatorio = *d.Obrigatorio
	}
	if d.SomenteLeitura != nil {
		campo.SomenteLeitura = *d.SomenteLeitura
	}
	if d.TamanhoMinimo != nil {
		campo.TamanhoMinimo = d.TamanhoMinimo
	}
	if d.TamanhoMaximo != nil {
		campo.TamanhoMaximo = d.TamanhoMaximo
	}
	if d.ValorMinimo != nil {
		campo.ValorMinimo = d.ValorMinimo
	}
	if d.ValorMaximo != nil {
		campo.ValorMaximo = d.ValorMaximo
	}
	if d.Mascara != nil {
		campo.Mascara = *d.Mascara
	}
	if d.Regex != nil {
		campo.Regex = *d.Regex
	}
	if d.MensagemErro != nil {
		campo.MensagemErro = *d.MensagemErro
	}
	if d.ValorPadrao != nil {
		campo.ValorPadrao = *d.ValorPadrao
	}
	if d.PermiteMultiplaSelecao != nil {
		campo.PermiteMultiplaSelecao = *d.PermiteMultiplaSelecao
	}
	if d.PermiteOutro != nil {
		campo.PermiteOutro = *d.PermiteOutro
	}
	if d.CondicoesVisibilidade != nil {
		campo.CondicoesVisibilidade = d.CondicoesVisibilidade
	}
	if d.CondicoesObrigatoriedade != nil {
		campo.CondicoesObrigatoriedade = d.CondicoesObrigatoriedade
	}
	if d.CondicoesValidacao != nil {
		campo.CondicoesValidacao = d.CondicoesValidacao
	}
	if d.FormulaCalculo != nil {
		campo.FormulaCalculo = *d.FormulaCalculo
	}
	if d.CamposDependentes != nil {
		campo.CamposDependentes = d.CamposDependentes
	}
	if d.DependeDe != nil {
		campo.DependeDe = d.DependeDe
	}
	if d.UnidadeMedida != nil {
		campo.UnidadeMedida = *d.UnidadeMedida
	}
	if d.ValoresReferencia != nil {
		campo.ValoresReferencia = d.ValoresReferencia
	}
	if d.VisivelImpressao != nil {
		campo.VisivelImpressao = *d.VisivelImpressao
	}
	if d.VisivelPortal != nil {
		campo.VisivelPortal = *d.VisivelPortal
	}
	if d.Metadados != nil {
		campo.Metadados = d.Metadados
	}
	if d.Observacoes != nil {
		campo.Observacoes = *d.Observacoes
	}
	if d.UpdatedBy != "" {
		campo.UpdatedBy = d.UpdatedBy
	}
}

type ReordenarDTO struct {
	Ordens []OrdemItemDTO `json:"ordens" validate:"required,min=1,dive"`
}

type OrdemItemDTO struct {
	ID    string `json:"id" validate:"required,uuid"`
	Ordem int    `json:"ordem" validate:"required,min=1"`
}

type DuplicarDTO struct {
	NovoCodigo string `json:"novo_codigo,omitempty" validate:"omitempty,max=50"`
}

type UpdateStatusCampoDTO struct {
	Status entities.StatusCampo `json:"status" validate:"required,oneof=ativo inativo oculto"`
}
