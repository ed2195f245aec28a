// pkg/constants/constants.go
package constants

//============== RESOURCES ==============

// Resource - коллекция удалённого API. Значение совпадает с сегментом пути.
type Resource string

const (
	ResourceEquipment           Resource = "equipment"
	ResourceTeams               Resource = "teams"
	ResourceTechnicians         Resource = "technicians"
	ResourceRequests            Resource = "requests"
	ResourceWorkCenters         Resource = "work-centers"
	ResourceEquipmentCategories Resource = "equipment-categories"
)

// Resources перечисляет все шесть коллекций снимка в порядке загрузки.
var Resources = []Resource{
	ResourceEquipment,
	ResourceTeams,
	ResourceTechnicians,
	ResourceRequests,
	ResourceWorkCenters,
	ResourceEquipmentCategories,
}

func (r Resource) String() string {
	return string(r)
}

// Path возвращает путь коллекции относительно базового URL API.
func (r Resource) Path() string {
	return "/" + string(r)
}

// IsValid проверяет, что ресурс входит в снимок.
func (r Resource) IsValid() bool {
	for _, known := range Resources {
		if known == r {
			return true
		}
	}
	return false
}

//============== CACHE KEYS ==============

const (
	// Ключ для bearer-токена, полученного через логин в API.
	// Формат: gearguard:api_token:<username> -> access_token
	CacheKeyAPIToken = "gearguard:api_token:%s"
)

//============== WEBSOCKET MESSAGE TYPES ==============

const (
	MessageTypeSnapshotReloaded = "snapshot_reloaded"
	MessageTypeLoadFailed       = "snapshot_load_failed"
)
