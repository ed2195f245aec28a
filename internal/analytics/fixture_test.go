package analytics

import (
	"time"

	"github.com/aarondl/null/v8"

	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
)

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func id(v int64) null.Int64 { return null.Int64From(v) }

func plantSnapshot() *entities.Snapshot {
	return &entities.Snapshot{
		Equipment: []entities.Equipment{
			{ID: 1, Name: "CNC Machine 01", Department: "Production", Status: "operational", Health: 90, PurchaseDate: "2026-03-02", SerialNumber: "CNC-001", TeamID: id(10)},
			{ID: 2, Name: "cnc Lathe", Department: "Production", Status: "operational", Health: 40},
			{ID: 3, Name: "Forklift A", Department: "Logistics", Status: "scrapped", Health: 70},
			{ID: 4, Name: "Printer", Department: "Office", Status: "operational", Health: 100, Location: "Floor 2"},
		},
		Teams: []entities.Team{
			{ID: 10, Name: "Mechanics"},
			{ID: 11, Name: "Electricians"},
		},
		Technicians: []entities.Technician{
			{ID: 20, Name: "Alice", TeamID: id(10)},
			{ID: 21, Name: "Bob", TeamID: id(11)},
			{ID: 22, Name: "Carol", TeamID: id(99)},
		},
		Requests: []entities.MaintenanceRequest{
			{ID: 100, Subject: "Oil Leak", EquipmentID: id(1), Type: "Corrective", Stage: lifecycle.StageNew, ScheduledDate: "2026-03-01", Priority: "Low", TeamID: id(10), TechnicianID: id(20)},
			{ID: 101, Subject: "Calibration", EquipmentID: id(1), Type: "Preventive", Stage: lifecycle.StageInProgress, ScheduledDate: "2026-04-01", Priority: "High", TeamID: id(10), TechnicianID: id(20)},
			{ID: 102, Subject: "oil leak", EquipmentID: id(3), Type: "Corrective", Stage: lifecycle.StageRepaired, ScheduledDate: "2026-02-01", Priority: "Medium", TeamID: id(11), TechnicianID: id(21)},
			{ID: 103, Subject: "Belt check", WorkCenterID: id(30), Type: "Preventive", Stage: lifecycle.StageScrap, ScheduledDate: "2026-01-10", Priority: "Medium", TeamID: id(11)},
			{ID: 104, Subject: "Toner", EquipmentID: id(4), Type: "Preventive", Stage: lifecycle.StageNew, ScheduledDate: "2026-03-15", Priority: "Medium", TechnicianID: id(20)},
		},
		WorkCenters: []entities.WorkCenter{
			{ID: 30, Name: "Assembly Line 1"},
		},
		EquipmentCategories: []entities.EquipmentCategory{},
	}
}
