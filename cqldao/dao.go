package cqldao

import (
	"github.com/d3ce1t/uuidgen-server/api"
)

func NewGeneratorStateDAO(session api.DbSession) api.GeneratorStateDAO {
	reconnectIfNeeded(session)
	return &GeneratorStateDAO{session: session.(*GocqlSession)}
}

func checkSession(session *GocqlSession) {
	if session == nil || !session.IsValid() {
		panic(ErrNoSession)
	}
}

func reconnectIfNeeded(session api.DbSession) {
	if session != nil && (!session.IsValid() || session.Closed()) {
		session.Connect()
	}
}
