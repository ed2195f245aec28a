package entities

import "time"

// Snapshot - согласованный набор всех шести коллекций одной успешной загрузки.
// После публикации в хранилище не изменяется.
type Snapshot struct {
	Equipment           []Equipment          `json:"equipment"`
	Teams               []Team               `json:"teams"`
	Technicians         []Technician         `json:"technicians"`
	Requests            []MaintenanceRequest `json:"requests"`
	WorkCenters         []WorkCenter         `json:"work_centers"`
	EquipmentCategories []EquipmentCategory  `json:"equipment_categories"`

	Version  uint64    `json:"version"`
	LoadedAt time.Time `json:"loaded_at"`
}

// EmptySnapshot - состояние до первой загрузки: все коллекции пусты, но не nil.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Equipment:           []Equipment{},
		Teams:               []Team{},
		Technicians:         []Technician{},
		Requests:            []MaintenanceRequest{},
		WorkCenters:         []WorkCenter{},
		EquipmentCategories: []EquipmentCategory{},
	}
}

func (s *Snapshot) EquipmentByID(id int64) (Equipment, bool) {
	for _, e := range s.Equipment {
		if e.ID == id {
			return e, true
		}
	}
	return Equipment{}, false
}

func (s *Snapshot) TeamByID(id int64) (Team, bool) {
	for _, t := range s.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}

func (s *Snapshot) TechnicianByID(id int64) (Technician, bool) {
	for _, t := range s.Technicians {
		if t.ID == id {
			return t, true
		}
	}
	return Technician{}, false
}

func (s *Snapshot) RequestByID(id int64) (MaintenanceRequest, bool) {
	for _, r := range s.Requests {
		if r.ID == id {
			return r, true
		}
	}
	return MaintenanceRequest{}, false
}

func (s *Snapshot) WorkCenterByID(id int64) (WorkCenter, bool) {
	for _, w := range s.WorkCenters {
		if w.ID == id {
			return w, true
		}
	}
	return WorkCenter{}, false
}

func (s *Snapshot) CategoryByID(id int64) (EquipmentCategory, bool) {
	for _, c := range s.EquipmentCategories {
		if c.ID == id {
			return c, true
		}
	}
	return EquipmentCategory{}, false
}
