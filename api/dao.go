package api

type DbSession interface {
	Connect() error
	IsValid() bool
	Closed() bool
}

// GeneratorStateDAO persists generator state so operators can audit
// which sequences a host has burned through across restarts. The
// in-process registry stays authoritative for collision avoidance;
// stored rows are informational.
type GeneratorStateDAO interface {
	Insert(state *GeneratorStateDTO) error
	LoadAll(host string) ([]*GeneratorStateDTO, error)
	DeleteAll(host string) error
}
