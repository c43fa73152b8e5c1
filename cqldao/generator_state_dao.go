package cqldao

import (
	"github.com/d3ce1t/uuidgen-server/api"
)

type GeneratorStateDAO struct {
	session *GocqlSession
}

func (d *GeneratorStateDAO) Insert(state *api.GeneratorStateDTO) error {

	checkSession(d.session)

	if state == nil || state.Host == "" {
		return api.ErrInvalidArg
	}

	stmt := `INSERT INTO generator_state (host, sequence, node, saved_date)
		VALUES (?, ?, ?, ?)`

	return convErr(d.session.Query(stmt, state.Host, state.Sequence,
		state.Node, state.SavedDate).Exec())
}

func (d *GeneratorStateDAO) LoadAll(host string) ([]*api.GeneratorStateDTO, error) {

	checkSession(d.session)

	stmt := `SELECT sequence, node, saved_date FROM generator_state
		WHERE host = ?`

	states := make([]*api.GeneratorStateDTO, 0, 4)

	var sequence int
	var node []byte
	var savedDate int64

	iter := d.session.Query(stmt, host).Iter()

	for iter.Scan(&sequence, &node, &savedDate) {
		states = append(states, &api.GeneratorStateDTO{
			Host:      host,
			Sequence:  sequence,
			Node:      node,
			SavedDate: savedDate,
		})
		node = nil
	}

	if err := iter.Close(); err != nil {
		return nil, convErr(err)
	}

	if len(states) == 0 {
		return nil, api.ErrNoResults
	}

	return states, nil
}

func (d *GeneratorStateDAO) DeleteAll(host string) error {
	checkSession(d.session)
	stmt := `DELETE FROM generator_state WHERE host = ?`
	return convErr(d.session.Query(stmt, host).Exec())
}
