package session

type signInForm struct {
	Email    string `name:"email" validate:"required,email"`
	Password string `name:"password" validate:"required"`
}

type signUpForm struct {
	Name     string `name:"name" validate:"required"`
	Email    string `name:"email" validate:"required,email"`
	Phone    string `name:"phone" validate:"required"`
	Password string `name:"password" validate:"required,min=6"`
}
