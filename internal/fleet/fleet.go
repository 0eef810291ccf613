// Package fleet holds the yard inventory the dashboard consumes after a
// successful login: motorcycles with their yard state and the monitoring
// cameras. The data is an in-memory demo set; persistence and real intake
// live outside this app.
package fleet

// Status is the yard state of a motorcycle.
type Status string

const (
	StatusRetirada      Status = "Retirada"
	StatusNoPatio       Status = "No pátio"
	StatusNoPatioErrado Status = "No pátio errado"
	StatusNaoDevolvida  Status = "Não devolvida"
)

// CameraStatus is the operational state of a yard camera.
type CameraStatus string

const (
	CameraAtiva      CameraStatus = "Ativa"
	CameraInativa    CameraStatus = "Inativa"
	CameraManutencao CameraStatus = "Em manutenção"
)

// Moto is one motorcycle in the yard.
type Moto struct {
	ID            int    `json:"idMoto"`
	Placa         string `json:"placaMoto"`
	Modelo        string `json:"modeloMoto"`
	Ano           int    `json:"anoMoto"`
	Identificador string `json:"identificadorMoto,omitempty"`
	Quilometragem int    `json:"quilometragemMoto"`
	Estado        Status `json:"estadoMoto"`
	Condicoes     string `json:"condicoesMoto,omitempty"`
	Hora          string `json:"hora"`
}

// Camera is one monitoring camera.
type Camera struct {
	ID     int          `json:"idCamera"`
	Nome   string       `json:"nomeCamera"`
	IP     string       `json:"ipCamera,omitempty"`
	Status CameraStatus `json:"status"`
	PosX   float64      `json:"posX,omitempty"`
	PosY   float64      `json:"posY,omitempty"`
}

// Resumo aggregates the counts the home dashboard charts.
type Resumo struct {
	TotalMotos    int
	PorEstado     map[Status]int
	TotalCameras  int
	CamerasAtivas int
}

// Inventory is a read-only snapshot of the yard.
type Inventory struct {
	motos   []Moto
	cameras []Camera
}

func NewInventory(motos []Moto, cameras []Camera) *Inventory {
	return &Inventory{motos: motos, cameras: cameras}
}

// Demo returns the inventory the demo build ships with.
func Demo() *Inventory {
	return NewInventory(
		[]Moto{
			{ID: 1, Placa: "ABC1234", Modelo: "Honda CG 160", Ano: 2022, Quilometragem: 12450, Estado: StatusNoPatio, Hora: "08:12"},
			{ID: 2, Placa: "XYZ5678", Modelo: "Yamaha YBR 125", Ano: 2021, Quilometragem: 30980, Estado: StatusRetirada, Hora: "09:47"},
			{ID: 3, Placa: "DEF2345", Modelo: "Honda Biz", Ano: 2020, Quilometragem: 45012, Estado: StatusNaoDevolvida, Condicoes: "retrovisor quebrado", Hora: "18:30"},
			{ID: 4, Placa: "GHI6789", Modelo: "Suzuki Yes", Ano: 2019, Quilometragem: 51200, Estado: StatusNoPatioErrado, Hora: "11:05"},
		},
		[]Camera{
			{ID: 1, Nome: "Portão principal", IP: "10.0.0.11", Status: CameraAtiva, PosX: 0, PosY: 0},
			{ID: 2, Nome: "Corredor B", IP: "10.0.0.12", Status: CameraAtiva, PosX: 12, PosY: 4},
			{ID: 3, Nome: "Fundos", Status: CameraInativa},
			{ID: 4, Nome: "Doca de manutenção", IP: "10.0.0.14", Status: CameraManutencao, PosX: 3, PosY: 9},
		},
	)
}

// Motos returns a copy of the motorcycle list.
func (i *Inventory) Motos() []Moto {
	out := make([]Moto, len(i.motos))
	copy(out, i.motos)
	return out
}

// Cameras returns a copy of the camera list.
func (i *Inventory) Cameras() []Camera {
	out := make([]Camera, len(i.cameras))
	copy(out, i.cameras)
	return out
}

// Resumo computes the dashboard counts.
func (i *Inventory) Resumo() Resumo {
	r := Resumo{
		TotalMotos:   len(i.motos),
		PorEstado:    make(map[Status]int),
		TotalCameras: len(i.cameras),
	}
	for _, m := range i.motos {
		r.PorEstado[m.Estado]++
	}
	for _, c := range i.cameras {
		if c.Status == CameraAtiva {
			r.CamerasAtivas++
		}
	}
	return r
}
