package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractQueryType(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{`SELECT * FROM "accounts" WHERE user_id = $1`, "SELECT"},
		{` insert into transactions (id) values ($1)`, "INSERT"},
		{`UPDATE accounts SET balance = balance - $1`, "UPDATE"},
		{`DELETE FROM "request_guards" WHERE expires_at <= $1`, "DELETE"},
		{`SET TRANSACTION ISOLATION LEVEL SERIALIZABLE`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			assert.Equal(t, tt.want, extractQueryType(tt.sql))
		})
	}
}

func TestExtractTableName(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{`SELECT * FROM "accounts" WHERE user_id = $1`, "accounts"},
		{`INSERT INTO "transactions" ("id","user_id") VALUES ($1,$2)`, "transactions"},
		{`UPDATE accounts SET balance = balance + $1 WHERE user_id = $2`, "accounts"},
		{`SELECT EXISTS (SELECT 1 FROM transactions WHERE user_id = $1)`, "transactions"},
		{`SET TRANSACTION ISOLATION LEVEL SERIALIZABLE`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTableName(tt.sql))
		})
	}
}
