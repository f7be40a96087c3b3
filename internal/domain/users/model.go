package users

import "time"

// User representa una cuenta registrada. Se crea una sola vez en el registro
// y no se modifica ni se borra después. El hash nunca sale por la API.
type User struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
