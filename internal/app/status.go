package app

import (
	"encoding/json"
	"io"
)

// WriteStatus renders the current status in the host protocol, or as JSON
// when jsonOut is set. The executable path is only needed for the protocol.
func (s *Service) WriteStatus(w io.Writer, jsonOut bool) error {
	status := s.Status()
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}
	exe, err := s.Executable()
	if err != nil {
		return err
	}
	if err := RenderStatus(w, status, exe); err != nil {
		return WrapExit(ExitIOFailure, err)
	}
	return nil
}
