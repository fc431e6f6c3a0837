package components

import "github.com/yohamta/donburi"

// ContactsData remembers which entities a body touched last fixed step so
// enter and exit can be told apart.
type ContactsData struct {
	Current map[donburi.Entity]*donburi.Entry
}

var Contacts = donburi.NewComponentType[ContactsData]()
