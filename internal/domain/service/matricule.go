package service

// MatriculeGenerator produces the unique staff code assigned to a user at
// registration. The exact scheme is an infrastructure concern.
type MatriculeGenerator interface {
	// Generate returns a new, unique matricule.
	Generate() string
}
