package editor

import "blogcreator/internal/post"

// Event is a user interaction processed by Engine.Update.
// The set is closed: only types in this package implement it.
type Event interface {
	isEvent()
}

type (
	EditTitle    struct{ Text string }
	EditSummary  struct{ Text string }
	EditTags     struct{ Text string }
	EditImageURL struct{ Text string }
	EditContent  struct{ Action Action }

	// SubmitImageURL fetches and decodes the image at URL for the meta tab.
	SubmitImageURL struct{ URL string }

	TabSelected struct{ Tab Tab }

	ChooseDate struct{}
	SubmitDate struct{ Date post.Date }
	CancelDate struct{}

	ChooseTime struct{}
	SubmitTime struct{ Time string }
	CancelTime struct{}

	LoadFile   struct{}
	SaveFile   struct{}
	SaveToFile struct{}

	LinkClicked struct{ URL string }
)

func (EditTitle) isEvent()      {}
func (EditSummary) isEvent()    {}
func (EditTags) isEvent()       {}
func (EditImageURL) isEvent()   {}
func (EditContent) isEvent()    {}
func (SubmitImageURL) isEvent() {}
func (TabSelected) isEvent()    {}
func (ChooseDate) isEvent()     {}
func (SubmitDate) isEvent()     {}
func (CancelDate) isEvent()     {}
func (ChooseTime) isEvent()     {}
func (SubmitTime) isEvent()     {}
func (CancelTime) isEvent()     {}
func (LoadFile) isEvent()       {}
func (SaveFile) isEvent()       {}
func (SaveToFile) isEvent()     {}
func (LinkClicked) isEvent()    {}

// ShortcutEvent maps a key chord to the file command it triggers.
// Terminals seldom report shift together with ctrl, so alt+s also saves as.
func ShortcutEvent(key string) (Event, bool) {
	switch key {
	case "ctrl+s":
		return SaveFile{}, true
	case "ctrl+shift+s", "alt+s":
		return SaveToFile{}, true
	case "ctrl+o":
		return LoadFile{}, true
	}
	return nil, false
}
