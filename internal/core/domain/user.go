package domain

import "time"

type User struct {
	ID        int64     `db:"id"`
	Image     string    `db:"image"` // path under the upload root, empty when no image was supplied
	Name      string    `db:"name"`
	Birthdate string    `db:"bday"` // YYYY-MM-DD
	Address   string    `db:"address"`
	Username  string    `db:"username"`
	Password  string    `db:"password"` // bcrypt hashed
	CreatedAt time.Time `db:"created_at"`
}

func NewUser(name, birthdate, address, username, hashedPassword, image string) *User {
	return &User{
		Image:     image,
		Name:      name,
		Birthdate: birthdate,
		Address:   address,
		Username:  username,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
	}
}
