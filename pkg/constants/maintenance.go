package constants

// --- ТИПЫ ОБСЛУЖИВАНИЯ ---
const (
	MaintenanceCorrective = "Corrective"
	MaintenancePreventive = "Preventive"
)

// --- ПРИОРИТЕТЫ ---
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// PriorityRank задаёт порядок сортировки: High раньше Medium, Medium раньше Low.
var PriorityRank = map[string]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// --- СОСТОЯНИЕ ОБОРУДОВАНИЯ ---
const (
	EquipmentOperational = "operational"
	EquipmentScrapped    = "scrapped"
)

// Значения по умолчанию, которые выставляет сервер для новых записей.
const (
	DefaultPriority        = PriorityMedium
	DefaultHealth          = 100
	DefaultCapacityTime    = 100.0
	DefaultTimeEfficiency  = 100.0
	DefaultOEETarget       = 85.0
	CriticalHealthBelow    = 50
	OverloadLoadPercentage = 85
)

// Подписи для отсутствующих ссылок.
const (
	LabelUnassigned = "Unassigned"
	LabelUnknown    = "Unknown"
)

func IsValidMaintenanceType(t string) bool {
	return t == MaintenanceCorrective || t == MaintenancePreventive
}

func IsValidPriority(p string) bool {
	_, ok := PriorityRank[p]
	return ok
}

func IsValidEquipmentStatus(s string) bool {
	return s == EquipmentOperational || s == EquipmentScrapped
}
