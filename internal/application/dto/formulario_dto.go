package dto

import (
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"gorm.io/datatypes"
)

type CreateFormularioDTO struct {
	CodigoFormulario string                       `json:"codigo_formulario" validate:"required,max=50"`
	NomeFormulario   string                       `json:"nome_formulario" validate:"required,max=255"`
	Descricao        string                       `json:"descricao,omitempty"`
	Tipo             entities.TipoFormulario      `json:"tipo,omitempty"`
	Categoria        entities.CategoriaFormulario `json:"categoria,omitempty"`
	Versao           int                          `json:"versao,omitempty" validate:"omitempty,min=1"`
	Status           entities.StatusFormulario    `json:"status,omitempty"`
	Obrigatorio      bool                         `json:"obrigatorio,omitempty"`
	PermiteEdicao    *bool                        `json:"permite_edicao,omitempty"`
	RequerAssinatura bool                         `json:"requer_assinatura,omitempty"`
	PermiteAnexos    bool                         `json:"permite_anexos,omitempty"`
	Metadados        datatypes.JSON               `json:"metadados,omitempty"`
	Observacoes      string                       `json:"observacoes,omitempty"`

	// Preenchido pelo middleware de autenticação, nunca pelo corpo
	CreatedBy string `json:"-"`
}

// ToEntity monta o Formulario aplicando os defaults de criação
func (d *CreateFormularioDTO) ToEntity() *entities.Formulario {
	formulario := &entities.Formulario{
		CodigoFormulario: d.CodigoFormulario,
		NomeFormulario:   d.NomeFormulario,
		Descricao:        d.Descricao,
		Tipo:             d.Tipo,
		Categoria:        d.Categoria,
		Versao:           d.Versao,
		Status:           d.Status,
		Ativo:            true,
		Obrigatorio:      d.Obrigatorio,
		PermiteEdicao:    true,
		RequerAssinatura: d.RequerAssinatura,
		PermiteAnexos:    d.PermiteAnexos,
		Metadados:        d.Metadados,
		Observacoes:      d.Observacoes,
		CreatedBy:        d.CreatedBy,
	}
	if d.Tipo == "" {
		formulario.Tipo = entities.TipoFormularioCustomizado
	}
	if d.Versao == 0 {
		formulario.Versao = 1
	}
	if d.Status == "" {
		formulario.Status = entities.StatusFormularioRascunho
	}
	if d.PermiteEdicao != nil {
		formulario.PermiteEdicao = *d.PermiteEdicao
	}
	return formulario
}

type UpdateStatusFormularioDTO struct {
	Status entities.StatusFormulario `json:"status" validate:"required,oneof=rascunho publicado arquivado em_revisao"`
}

type UpdateFormularioDTO struct {
	CodigoFormulario *string                       `json:"codigo_formulario,omitempty" validate:"omitempty,max=50"`
	NomeFormulario   *string                       `json:"nome_formulario,omitempty" validate:"omitempty,max=255"`
	Descricao        *string                       `json:"descricao,omitempty"`
	Tipo             *entities.TipoFormulario      `json:"tipo,omitempty"`
	Categoria        *entities.CategoriaFormulario `json:"categoria,omitempty"`
	Obrigatorio      *bool                         `json:"obrigatorio,omitempty"`
	PermiteEdicao    *bool                         `json:"permite_edicao,omitempty"`
	RequerAssinatura *bool                         `json:"requer_assinatura,omitempty"`
	PermiteAnexos    *bool                         `json:"permite_anexos,omitempty"`
	Metadados        datatypes.JSON                `json:"metadados,omitempty"`
	Observacoes      *string                       `json:"observacoes,omitempty"`

	UpdatedBy string `json:"-"`
}

// ApplyTo mescla os campos informados sobre o registro existente
func (d *UpdateFormularioDTO) ApplyTo(formulario *entities.Formulario) {
	if d.CodigoFormulario != nil {
		formulario.CodigoFormulario = *d.CodigoFormulario
	}
	if d.NomeFormulario != nil {
		formulario.NomeFormulario = *d.NomeFormulario
	}
	if d.Descricao != nil {
		formulario.Descricao = *d.Descricao
	}
	if d.Tipo != nil {
		formulario.Tipo = *d.Tipo
	}
	if d.Categoria != nil {
		formulario.Categoria = *d.Categoria
	}
	if d.Obrigatorio != nil {
		formulario.Obrigatorio = *d.Obrigatorio
	}
	if d.PermiteEdicao != nil {
		formulario.PermiteEdicao = *d.PermiteEdicao
	}
	if d.RequerAssinatura != nil {
		formulario.RequerAssinatura = *d.RequerAssinatura
	}
	if d.PermiteAnexos != nil {
		formulario.PermiteAnexos = *d.PermiteAnexos
	}
	if d.Metadados != nil {
		formulario.Metadados = d.Metadados
	}
	if d.Observacoes != nil {
		formulario.Observacoes = *d.Observacoes
	}
	if d.UpdatedBy != "" {
		formulario.UpdatedBy = d.UpdatedBy
	}
}
