// Файл: internal/integrations/registry.go
package integrations

import (
	"fmt"
	"sort"
	"sync"
)

// Registry хранит доступные провайдеры и имя активного.
type Registry struct {
	providers map[string]DataProvider
	active    string
	mu        sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]DataProvider),
	}
}

func (r *Registry) Register(provider DataProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := provider.Name()
	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("провайдер с именем '%s' уже зарегистрирован", name)
	}
	r.providers[name] = provider
	return nil
}

func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; !exists {
		return fmt.Errorf("невозможно установить активным провайдера '%s': он не зарегистрирован (доступны: %v)", name, r.namesLocked())
	}
	r.active = name
	return nil
}

func (r *Registry) Active() (DataProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.active == "" {
		return nil, fmt.Errorf("активный провайдер не установлен")
	}
	return r.providers[r.active], nil
}

// Names возвращает имена зарегистрированных провайдеров по алфавиту.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
