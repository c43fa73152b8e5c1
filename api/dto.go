package api

// GeneratorStateDTO is the durable record of one generator instance:
// which clock sequence it claimed, on which node, and when it was
// saved. One row exists per (host, sequence) pair.
type GeneratorStateDTO struct {
	Host      string
	Node      []byte
	Sequence  int
	SavedDate int64
}
