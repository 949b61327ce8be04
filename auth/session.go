package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const adminKey = "admin"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) IsAdmin() bool {
	v := s.Get(adminKey)
	if v == nil {
		return false
	}
	admin, ok := v.(bool)
	return ok && admin
}

func (s *Session) LoginAdmin() {
	s.Set(adminKey, true)
	s.Save()
}

func (s *Session) Logout() {
	s.Delete(adminKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	s.Save()
}
