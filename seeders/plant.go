package seeders

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"

	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
	"gearguard/pkg/constants"
)

const demoCompany = "Gear Guard Industries"

// DemoPlant возвращает демонстрационный завод. ID локальные: при записи
// в удалённый API они заменяются выданными сервером.
func DemoPlant() *entities.Snapshot {
	return &entities.Snapshot{
		Teams: []entities.Team{
			{ID: 1, Name: "Mechanics", Leader: "John Doe", MembersCount: 5},
			{ID: 2, Name: "Electricians", Leader: "Sarah Sparks", MembersCount: 3},
			{ID: 3, Name: "IT Support", Leader: "Alan Turing", MembersCount: 4},
		},
		Technicians: []entities.Technician{
			{ID: 11, Name: "Mike Tools", Avatar: "https://i.pravatar.cc/150?u=1", TeamID: null.Int64From(1)},
			{ID: 12, Name: "Alice Volt", Avatar: "https://i.pravatar.cc/150?u=2", TeamID: null.Int64From(2)},
			{ID: 13, Name: "Kevin Byte", Avatar: "https://i.pravatar.cc/150?u=3", TeamID: null.Int64From(3)},
		},
		WorkCenters: []entities.WorkCenter{
			{ID: 21, Name: "Assembly 1", Code: "ASSEM/01", Tag: null.StringFrom("Line A"),
				CostPerHour: decimal.RequireFromString("45.50"), CapacityTime: 1, TimeEfficiency: 100, OEETarget: 94.59},
			{ID: 22, Name: "Drill 1", Code: "DRILL/01", Tag: null.StringFrom("Line B"),
				CostPerHour: decimal.RequireFromString("38.00"), CapacityTime: 1, TimeEfficiency: 100, OEETarget: 90},
		},
		EquipmentCategories: []entities.EquipmentCategory{
			{ID: 31, Name: "Computers", Company: null.StringFrom("My Company (San Francisco)")},
			{ID: 32, Name: "Software", Company: null.StringFrom("My Company (San Francisco)")},
			{ID: 33, Name: "Monitors", Company: null.StringFrom("My Company (San Francisco)")},
		},
		Equipment: []entities.Equipment{
			{ID: 41, Name: "CNC Machine 01", SerialNumber: "MT/125/222", PurchaseDate: "2022-05-10", Warranty: "2025-05-10",
				Location: "Shop Floor A", Department: "Production", Employee: "Tejas Modi",
				Status: constants.EquipmentOperational, Health: 72,
				TeamID: null.Int64From(1), TechnicianID: null.Int64From(11), Company: null.StringFrom(demoCompany)},
			{ID: 42, Name: "CNC Machine 02", SerialNumber: "MT/125/223", PurchaseDate: "2022-06-01", Warranty: "2025-06-01",
				Location: "Shop Floor A", Department: "Production", Employee: "Tejas Modi",
				Status: constants.EquipmentOperational, Health: 45,
				TeamID: null.Int64From(1), TechnicianID: null.Int64From(11), Company: null.StringFrom(demoCompany)},
			{ID: 43, Name: "Samsung Monitor 15\"", SerialNumber: "IT/SR/012", PurchaseDate: "2023-01-15", Warranty: "2024-01-15",
				Location: "Office 201", Department: "Admin", Employee: "Tejas Modi",
				Status: constants.EquipmentOperational, Health: 100,
				TeamID: null.Int64From(3), TechnicianID: null.Int64From(13), CategoryID: null.Int64From(33),
				Company: null.StringFrom("Gear Guard Admin Office")},
		},
		Requests: []entities.MaintenanceRequest{
			{ID: 51, Subject: "Spindle overheating", EquipmentID: null.Int64From(41), Type: constants.MaintenanceCorrective,
				Stage: lifecycle.StageInProgress, ScheduledDate: "2026-01-12", Duration: 4, Priority: constants.PriorityHigh,
				TeamID: null.Int64From(1), TechnicianID: null.Int64From(11)},
			{ID: 52, Subject: "Coolant leak", EquipmentID: null.Int64From(42), Type: constants.MaintenanceCorrective,
				Stage: lifecycle.StageNew, ScheduledDate: "2026-01-20", Duration: 2, Priority: constants.PriorityMedium,
				TeamID: null.Int64From(1), TechnicianID: null.Int64From(11)},
			{ID: 53, Subject: "Quarterly calibration", EquipmentID: null.Int64From(41), Type: constants.MaintenancePreventive,
				Stage: lifecycle.StageNew, ScheduledDate: "2026-04-01", Duration: 3, Priority: constants.PriorityLow,
				TeamID: null.Int64From(1), TechnicianID: null.Int64From(11)},
			{ID: 54, Subject: "Dead pixels", EquipmentID: null.Int64From(43), Type: constants.MaintenanceCorrective,
				Stage: lifecycle.StageRepaired, ScheduledDate: "2025-12-05", Duration: 1, Priority: constants.PriorityLow,
				TeamID: null.Int64From(3), TechnicianID: null.Int64From(13)},
			{ID: 55, Subject: "Line A power audit", WorkCenterID: null.Int64From(21), Type: constants.MaintenancePreventive,
				Stage: lifecycle.StageNew, ScheduledDate: "2026-02-15", Duration: 6, Priority: constants.PriorityMedium,
				TeamID: null.Int64From(2), TechnicianID: null.Int64From(12)},
		},
	}
}
