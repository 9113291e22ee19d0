package physics

import "github.com/jakecoffman/cp"

type BallKind int

const (
	Yes BallKind = iota
	No
)

func (k BallKind) String() string {
	if k == Yes {
		return "Yes"
	}
	return "No"
}

// Tag identifies the owner of a physics body. The only implementations are
// BallTag and RingTag.
type Tag interface {
	isTag()
}

type BallTag struct {
	Kind BallKind
}

type RingTag struct {
	ID int
}

func (BallTag) isTag() {}
func (RingTag) isTag() {}

// TagOf returns the tag stored on body, or nil for untagged bodies.
func TagOf(body *cp.Body) Tag {
	if body == nil {
		return nil
	}
	t, _ := body.UserData.(Tag)
	return t
}
