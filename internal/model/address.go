package model

type TipoDomicilio string

const (
	TipoDomicilioResidencia TipoDomicilio = "residencia"
	TipoDomicilioLaboral    TipoDomicilio = "laboral"
)

func (t TipoDomicilio) IsValid() bool {
	switch t {
	case TipoDomicilioResidencia, TipoDomicilioLaboral:
		return true
	default:
		return false
	}
}

// Address is a shipping address registered by the user.
// Which one is selected for checkout is session state, not a field here.
type Address struct {
	ID              int64         `json:"id,omitempty"`
	UserID          int64         `json:"user_id,omitempty"`
	Direccion       string        `json:"direccion"`
	Departamento    string        `json:"departamento"`
	Ciudad          string        `json:"ciudad"`
	Barrio          string        `json:"barrio"`
	Apartamento     string        `json:"apartamento,omitempty"`
	Indicaciones    string        `json:"indicaciones,omitempty"`
	TipoDomicilio   TipoDomicilio `json:"tipo_domicilio"`
	NombreContacto  string        `json:"nombre_contacto"`
	CelularContacto string        `json:"celular_contacto"`
}
