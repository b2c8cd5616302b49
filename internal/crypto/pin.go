// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronin

package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPINTooShort is returned when the PIN does not meet the minimum
	// length requirement.
	ErrPINTooShort = errors.New("pin must be at least 4 characters")

	// ErrWrongPIN is returned when the entered PIN does not match the
	// stored hash.
	ErrWrongPIN = errors.New("wrong pin")
)

const minPINLength = 4

type pinService struct {
	cost int
}

// NewPINService constructs a [PINService] using the default bcrypt cost.
// Unlock happens on every app start, so the default cost keeps the delay
// imperceptible while still slowing brute force against a stolen database
// file.
func NewPINService() PINService {
	return &pinService{cost: bcrypt.DefaultCost}
}

// HashPIN implements [PINService].
func (p *pinService) HashPIN(pin string) (string, error) {
	if len(pin) < minPINLength {
		return "", ErrPINTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), p.cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPIN implements [PINService].
func (p *pinService) VerifyPIN(hash, pin string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrWrongPIN
		}
		return err
	}

	return nil
}
