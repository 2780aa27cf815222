package pneu

// request DTOs

type cadastroRequest struct {
	NumeroFogo    string  `json:"numeroFogo" validate:"required"`
	Marca         string  `json:"marca" validate:"required"`
	Modelo        string  `json:"modelo" validate:"required"`
	Largura       int     `json:"largura"`
	Perfil        int     `json:"perfil"`
	Aro           int     `json:"aro"`
	DOT           string  `json:"dot" validate:"required"`
	Localizacao   string  `json:"localizacao" validate:"required"`
	Quantidade    int     `json:"quantidade"`
	Preco         float64 `json:"preco" validate:"gte=0"`
	Observacoes   string  `json:"observacoes"`
	SulcoOriginal float64 `json:"sulcoOriginal" validate:"gte=0"`
	PressaoIdeal  float64 `json:"pressaoIdeal" validate:"gte=0"`
}

type edicaoRequest struct {
	Marca         string  `json:"marca" validate:"required"`
	Modelo        string  `json:"modelo" validate:"required"`
	Largura       int     `json:"largura"`
	Perfil        int     `json:"perfil"`
	Aro           int     `json:"aro"`
	DOT           string  `json:"dot" validate:"required"`
	Localizacao   string  `json:"localizacao" validate:"required"`
	Quantidade    int     `json:"quantidade"`
	Preco         float64 `json:"preco" validate:"gte=0"`
	Observacoes   string  `json:"observacoes"`
	SulcoOriginal float64 `json:"sulcoOriginal" validate:"gte=0"`
	PressaoIdeal  float64 `json:"pressaoIdeal" validate:"gte=0"`
}

type montarRequest struct {
	VeiculoID uint   `json:"veiculoId" validate:"required"`
	Posicao   string `json:"posicao" validate:"required"`
}

type desmontarRequest struct {
	KMFinal float64 `json:"kmFinal" validate:"gte=0"`
}

type receberRecapagemRequest struct {
	Custo     float64 `json:"custo" validate:"gte=0"`
	NovoSulco float64 `json:"novoSulco" validate:"required,gt=0"`
}

type inspecaoRequest struct {
	Sulco1  float64 `json:"sulco1" validate:"gte=0"`
	Sulco2  float64 `json:"sulco2" validate:"gte=0"`
	Sulco3  float64 `json:"sulco3" validate:"gte=0"`
	Sulco4  float64 `json:"sulco4" validate:"gte=0"`
	Pressao float64 `json:"pressao" validate:"gte=0"`
}

type reparoRequest struct {
	Detalhes string `json:"detalhes" validate:"required"`
}
