package usecases

import "github.com/gestorlab/gestorlab-api/internal/domain/entities"

// CampoPadraoInfo descreve um campo padrão do sistema disponível para os
// formulários de exames e fichas clínicas.
type CampoPadraoInfo struct {
	Codigo              string               `json:"codigo"`
	Nome                string               `json:"nome"`
	Descricao           string               `json:"descricao"`
	Categoria           string               `json:"categoria"`
	TiposCampoSugeridos []entities.TipoCampo `json:"tipos_campo_sugeridos"`
}

// CatalogoCamposPadrao agrupa os campos padrão com as categorias disponíveis
type CatalogoCamposPadrao struct {
	Campos     []CampoPadraoInfo `json:"campos"`
	Total      int               `json:"total"`
	Categorias []string          `json:"categorias"`
}

// TipoCampoInfo descreve um tipo de campo suportado pelo renderizador
type TipoCampoInfo struct {
	Valor               entities.TipoCampo `json:"valor"`
	Label               string             `json:"label"`
	Categoria           string             `json:"categoria"`
	PermiteAlternativas bool               `json:"permite_alternativas"`
	Descricao           string             `json:"descricao"`
}

// CatalogoTiposCampo agrupa os tipos de campo com as categorias disponíveis
type CatalogoTiposCampo struct {
	Tipos      []TipoCampoInfo `json:"tipos"`
	Total      int             `json:"total"`
	Categorias []string        `json:"categorias"`
}

func camposPadraoInfo() []CampoPadraoInfo {
	return []CampoPadraoInfo{
		// Unidades de Medida e Quantidades
		{
			Codigo:              "UNIDADE_MEDIDA",
			Nome:                "Unidade de Medida",
			Descricao:           "Usado nos formulários de exames (MG/DL, G, MG, etc)",
			Categoria:           "Unidades de Medida e Quantidades",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoSelect, entities.TipoCampoRadio},
		},
		{
			Codigo:              "TIPO_UNIDADE",
			Nome:                "Tipo de Unidade",
			Descricao:           "Classificação de unidade (Volume, Massa, Comprimento, etc)",
			Categoria:           "Unidades de Medida e Quantidades",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoSelect},
		},

		// Dados do Paciente
		{
			Codigo:              "TIPO_SANGUE",
			Nome:                "Tipo Sanguíneo",
			Descricao:           "Tipo sanguíneo do paciente (A+, B-, O+, AB-, etc)",
			Categoria:           "Dados do Paciente",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoSelect, entities.TipoCampoRadio},
		},
		{
			Codigo:              "GENERO",
			Nome:                "Gênero",
			Descricao:           "Gênero do paciente (Masculino, Feminino, Outro)",
			Categoria:           "Dados do Paciente",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoSelect, entities.TipoCampoRadio},
		},
		{
			Codigo:              "COR_RACA",
			Nome:                "Cor/Raça",
			Descricao:           "Autodeclaração de cor/raça conforme IBGE",
			Categoria:           "Dados do Paciente",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoSelect},
		},
		{
			Codigo:              "ESTADO_CIVIL",
			Nome:                "Estado Civil",
			Descricao:           "Estado civil do paciente",
			Categoria:           "Dados do Paciente",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoSelect},
		},
		{
			Codigo:              "ESCOLARIDADE",
			Nome:                "Escolaridade",
			Descricao:           "Nível de escolaridade do paciente",
			Categoria:           "Dados do Paciente",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoSelect},
		},
		{
			Codigo:              "PROFISSAO",
			Nome:                "Profissão",
			Descricao:           "Profissão/ocupação do paciente",
			Categoria:           "Dados do Paciente",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoTexto, entities.TipoCampoSelect},
		},

		// Dados de Exame/Amostra
		{
			Codigo:              "TIPO_AMOSTRA",
			Nome:                "Tipo de Amostra",
			Descricao:           "Tipo de amostra biológica (Sangue, Urina, Fezes, etc)",
			Categoria:           "Dados de Exame/Amostra",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoSelect},
		},
		{
			Codigo:              "METODO_COLETA",
			Nome:                "Método de Coleta",
			Descricao:           "Método utilizado para coletar a amostra",
			Categoria:           "Dados de Exame/Amostra",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoSelect, entities.TipoCampoTextoLongo},
		},
		{
			Codigo:              "TIPO_RECIPIENTE",
			Nome:                "Tipo de Recipiente",
			Descricao:           "Tipo de recipiente para amostra (Tubo, Frasco, etc)",
			Categoria:           "Dados de Exame/Amostra",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoSelect},
		},
		{
			Codigo:              "CONDICAO_JEJUM",
			Nome:                "Condição de Jejum",
			Descricao:           "Status de jejum do paciente",
			Categoria:           "Dados de Exame/Amostra",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoSelect, entities.TipoCampoRadio},
		},
		{
			Codigo:              "PREPARO_PACIENTE",
			Nome:                "Preparo do Paciente",
			Descricao:           "Instruções de preparo seguidas pelo paciente",
			Categoria:           "Dados de Exame/Amostra",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoMultiplaEscolha, entities.TipoCampoTextoLongo},
		},

		// Dados Clínicos
		{
			Codigo:              "SINTOMAS",
			Nome:                "Sintomas",
			Descricao:           "Sintomas apresentados pelo paciente",
			Categoria:           "Dados Clínicos",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoMultiplaEscolha, entities.TipoCampoTextoLongo},
		},
		{
			Codigo:              "MEDICAMENTOS_USO",
			Nome:                "Medicamentos em Uso",
			Descricao:           "Medicamentos que o paciente está utilizando",
			Categoria:           "Dados Clínicos",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoTextoLongo, entities.TipoCampoLista},
		},
		{
			Codigo:              "ALERGIAS",
			Nome:                "Alergias",
			Descricao:           "Alergias conhecidas do paciente",
			Categoria:           "Dados Clínicos",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoMultiplaEscolha, entities.TipoCampoTextoLongo},
		},
		{
			Codigo:              "HISTORICO_FAMILIAR",
			Nome:                "Histórico Familiar",
			Descricao:           "Histórico de doenças na família",
			Categoria:           "Dados Clínicos",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoTextoLongo},
		},
		{
			Codigo:              "COMORBIDADES",
			Nome:                "Comorbidades",
			Descricao:           "Doenças/condições pré-existentes",
			Categoria:           "Dados Clínicos",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoMultiplaEscolha},
		},

		// Resultados e Interpretações
		{
			Codigo:              "RESULTADO_QUALITATIVO",
			Nome:                "Resultado Qualitativo",
			Descricao:           "Resultado qualitativo do exame",
			Categoria:           "Resultados e Interpretações",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoSelect, entities.TipoCampoRadio},
		},
		{
			Codigo:              "INTERPRETACAO",
			Nome:                "Interpretação",
			Descricao:           "Interpretação dos resultados do exame",
			Categoria:           "Resultados e Interpretações",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoTextoLongo, entities.TipoCampoTextoRico},
		},
		{
			Codigo:              "OBSERVACOES_TECNICAS",
			Nome:                "Observações Técnicas",
			Descricao:           "Observações técnicas sobre o exame",
			Categoria:           "Resultados e Interpretações",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoTextoLongo},
		},
		{
			Codigo:              "CONCLUSAO_LAUDO",
			Nome:                "Conclusão do Laudo",
			Descricao:           "Conclusão final do laudo médico",
			Categoria:           "Resultados e Interpretações",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoTextoRico, entities.TipoCampoTextoLongo},
		},

		// Controles e Status
		{
			Codigo:              "STATUS_EXAME",
			Nome:                "Status do Exame",
			Descricao:           "Status atual do exame",
			Categoria:           "Controles e Status",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoSelect},
		},
		{
			Codigo:              "PRIORIDADE",
			Nome:                "Prioridade",
			Descricao:           "Prioridade de execução do exame",
			Categoria:           "Controles e Status",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoSelect, entities.TipoCampoRadio},
		},
		{
			Codigo:              "URGENCIA",
			Nome:                "Urgência",
			Descricao:           "Nível de urgência do exame",
			Categoria:           "Controles e Status",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoSelect, entities.TipoCampoSwitch},
		},

		// Outros
		{
			Codigo:              "SIM_NAO",
			Nome:                "Sim/Não",
			Descricao:           "Campo binário de sim/não",
			Categoria:           "Outros",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoRadio, entities.TipoCampoSwitch, entities.TipoCampoSelect},
		},
		{
			Codigo:              "PRESENCA_AUSENCIA",
			Nome:                "Presença/Ausência",
			Descricao:           "Indica presença ou ausência de algo",
			Categoria:           "Outros",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoRadio, entities.TipoCampoSelect},
		},
		{
			Codigo:              "POSITIVO_NEGATIVO",
			Nome:                "Positivo/Negativo",
			Descricao:           "Resultado positivo ou negativo",
			Categoria:           "Outros",
			TiposCampoSugeridos: []entities.TipoCampo{entities.TipoCampoRadio, entities.TipoCampoSelect},
		},
	}
}

// Ordem de apresentação dos tipos no catálogo
func tiposCampoOrdenados() []entities.TipoCampo {
	return []entities.TipoCampo{
		entities.TipoCampoTexto,
		entities.TipoCampoTextoLongo,
		entities.TipoCampoTextoRico,
		entities.TipoCampoEmail,
		entities.TipoCampoURL,
		entities.TipoCampoTelefone,
		entities.TipoCampoCPF,
		entities.TipoCampoCNPJ,
		entities.TipoCampoCEP,
		entities.TipoCampoNumero,
		entities.TipoCampoDecimal,
		entities.TipoCampoMoeda,
		entities.TipoCampoPorcentagem,
		entities.TipoCampoData,
		entities.TipoCampoHora,
		entities.TipoCampoDataHora,
		entities.TipoCampoPeriodoData,
		entities.TipoCampoSelect,
		entities.TipoCampoRadio,
		entities.TipoCampoCheckbox,
		entities.TipoCampoSwitch,
		entities.TipoCampoMultiplaEscolha,
		entities.TipoCampoArquivo,
		entities.TipoCampoImagem,
		entities.TipoCampoAssinatura,
		entities.TipoCampoLocalizacao,
		entities.TipoCampoCodigoBarras,
		entities.TipoCampoQRCode,
		entities.TipoCampoSecao,
		entities.TipoCampoSeparador,
		entities.TipoCampoTitulo,
		entities.TipoCampoParagrafo,
		entities.TipoCampoHTML,
		entities.TipoCampoTabela,
		entities.TipoCampoLista,
		entities.TipoCampoMatriz,
		entities.TipoCampoFormula,
		entities.TipoCampoCondicional,
	}
}

func tipoCampoLabel(tipo entities.TipoCampo) string {
	labels := map[entities.TipoCampo]string{
		entities.TipoCampoTexto:           "Texto Curto",
		entities.TipoCampoTextoLongo:      "Texto Longo",
		entities.TipoCampoTextoRico:       "Texto Rico (HTML)",
		entities.TipoCampoEmail:           "E-mail",
		entities.TipoCampoURL:             "URL",
		entities.TipoCampoTelefone:        "Telefone",
		entities.TipoCampoCPF:             "CPF",
		entities.TipoCampoCNPJ:            "CNPJ",
		entities.TipoCampoCEP:             "CEP",
		entities.TipoCampoNumero:          "Número Inteiro",
		entities.TipoCampoDecimal:         "Número Decimal",
		entities.TipoCampoMoeda:           "Valor Monetário",
		entities.TipoCampoPorcentagem:     "Porcentagem",
		entities.TipoCampoData:            "Data",
		entities.TipoCampoHora:            "Hora",
		entities.TipoCampoDataHora:        "Data e Hora",
		entities.TipoCampoPeriodoData:     "Período de Datas",
		entities.TipoCampoSelect:          "Seleção (Dropdown)",
		entities.TipoCampoRadio:           "Opção Única (Radio)",
		entities.TipoCampoCheckbox:        "Caixa de Seleção",
		entities.TipoCampoSwitch:          "Interruptor (Liga/Desliga)",
		entities.TipoCampoMultiplaEscolha: "Múltipla Escolha",
		entities.TipoCampoArquivo:         "Upload de Arquivo",
		entities.TipoCampoImagem:          "Upload de Imagem",
		entities.TipoCampoAssinatura:      "Assinatura Digital",
		entities.TipoCampoLocalizacao:     "Localização (GPS)",
		entities.TipoCampoCodigoBarras:    "Código de Barras",
		entities.TipoCampoQRCode:          "QR Code",
		entities.TipoCampoSecao:           "Seção",
		entities.TipoCampoSeparador:       "Separador Visual",
		entities.TipoCampoTitulo:          "Título",
		entities.TipoCampoParagrafo:       "Parágrafo",
		entities.TipoCampoHTML:            "HTML Personalizado",
		entities.TipoCampoTabela:          "Tabela",
		entities.TipoCampoLista:           "Lista",
		entities.TipoCampoMatriz:          "Matriz",
		entities.TipoCampoFormula:         "Fórmula/Cálculo",
		entities.TipoCampoCondicional:     "Campo Condicional",
	}
	if label, ok := labels[tipo]; ok {
		return label
	}
	return string(tipo)
}

func tipoCampoCategoria(tipo entities.TipoCampo) string {
	switch tipo {
	case entities.TipoCampoTexto, entities.TipoCampoTextoLongo, entities.TipoCampoTextoRico,
		entities.TipoCampoEmail, entities.TipoCampoURL, entities.TipoCampoTelefone,
		entities.TipoCampoCPF, entities.TipoCampoCNPJ, entities.TipoCampoCEP:
		return "Campos de texto"
	case entities.TipoCampoNumero, entities.TipoCampoDecimal, entities.TipoCampoMoeda,
		entities.TipoCampoPorcentagem:
		return "Campos numéricos"
	case entities.TipoCampoData, entities.TipoCampoHora, entities.TipoCampoDataHora,
		entities.TipoCampoPeriodoData:
		return "Campos de data/hora"
	case entities.TipoCampoSelect, entities.TipoCampoRadio, entities.TipoCampoCheckbox,
		entities.TipoCampoSwitch, entities.TipoCampoMultiplaEscolha:
		return "Campos de seleção"
	case entities.TipoCampoArquivo, entities.TipoCampoImagem, entities.TipoCampoAssinatura,
		entities.TipoCampoLocalizacao, entities.TipoCampoCodigoBarras, entities.TipoCampoQRCode:
		return "Campos especiais"
	case entities.TipoCampoSecao, entities.TipoCampoSeparador, entities.TipoCampoTitulo,
		entities.TipoCampoParagrafo, entities.TipoCampoHTML:
		return "Campos de layout"
	case entities.TipoCampoTabela, entities.TipoCampoLista, entities.TipoCampoMatriz,
		entities.TipoCampoFormula, entities.TipoCampoCondicional:
		return "Campos complexos"
	}
	return "Outros"
}

func tipoCampoDescricao(tipo entities.TipoCampo) string {
	descricoes := map[entities.TipoCampo]string{
		entities.TipoCampoSelect:          "Campo de seleção com lista suspensa (dropdown). Permite escolher uma opção entre várias.",
		entities.TipoCampoRadio:           "Botões de opção onde apenas uma alternativa pode ser selecionada.",
		entities.TipoCampoCheckbox:        "Caixas de seleção que permitem marcar/desmarcar.",
		entities.TipoCampoMultiplaEscolha: "Permite selecionar múltiplas opções de uma lista.",
		entities.TipoCampoTexto:           "Campo de texto curto de uma linha.",
		entities.TipoCampoTextoLongo:      "Campo de texto de múltiplas linhas (textarea).",
		entities.TipoCampoNumero:          "Campo para números inteiros.",
		entities.TipoCampoDecimal:         "Campo para números decimais.",
		entities.TipoCampoData:            "Seletor de data.",
		entities.TipoCampoSwitch:          "Interruptor de liga/desliga para valores booleanos.",
	}
	return descricoes[tipo]
}
