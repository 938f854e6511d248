package models

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"` // doubles as the ledger account id
	Password string `json:"password"`
	Role     string `json:"role"` // user or admin
}

var DummyUsers = []User{
	{"1", "alice", "pass1", "user"},
	{"2", "bob", "pass2", "user"},
	{"3", "carol", "pass3", "user"},
	{"4", "robin", "pass4", "user"},
	{"5", "user5", "pass5", "user"},
	{"6", "user6", "pass6", "user"},
	{"7", "user7", "pass7", "user"},
	{"8", "user8", "pass8", "user"},
	{"9", "user9", "pass9", "user"},
	{"10", "admin", "admin123", "admin"},
}
