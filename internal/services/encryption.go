package services

import (
	"oneline/internal/crypto"
	"oneline/internal/models"
)

// EncryptionService applies the cipher to this domain's records: journal
// lines and user emails are sealed at rest, emails additionally get a blind
// index for login lookup.
type EncryptionService struct {
	cipher *crypto.Cipher
}

func NewEncryptionService(sealKey, indexKey []byte) (*EncryptionService, error) {
	c, err := crypto.NewCipher(sealKey, indexKey)
	if err != nil {
		return nil, err
	}
	return &EncryptionService{cipher: c}, nil
}

func (s *EncryptionService) EncryptEntry(e *models.Entry) error {
	sealed, err := s.cipher.Seal(e.Line)
	if err != nil {
		return err
	}
	e.Line = sealed
	return nil
}

func (s *EncryptionService) DecryptEntry(e *models.Entry) error {
	line, err := s.cipher.Open(e.Line)
	if err != nil {
		return err
	}
	e.Line = line
	return nil
}

func (s *EncryptionService) EncryptUser(u *models.User) error {
	sealed, err := s.cipher.Seal(u.Email)
	if err != nil {
		return err
	}
	u.EmailBlindIndex = s.cipher.BlindIndex(u.Email)
	u.Email = sealed
	return nil
}

func (s *EncryptionService) DecryptUser(u *models.User) error {
	email, err := s.cipher.Open(u.Email)
	if err != nil {
		return err
	}
	u.Email = email
	return nil
}

func (s *EncryptionService) DecryptEmail(sealed string) (string, error) {
	return s.cipher.Open(sealed)
}

func (s *EncryptionService) EmailBlindIndex(email string) string {
	return s.cipher.BlindIndex(email)
}
