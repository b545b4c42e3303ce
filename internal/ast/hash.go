package ast

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity. The version suffix enables
// future encoding migration without colliding hash spaces.
const (
	DomainProgram    = "lumen/ast/program/v1"
	DomainExpression = "lumen/ast/expression/v1"
)

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null byte prevents domain/data
// boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ProgramHash computes the content-addressed identity of a program. Two
// programs hash equal exactly when they are structurally equal, including the
// iteration order of the program aggregates.
func ProgramHash(p *Program) (string, error) {
	canonical, err := MarshalCanonical(p)
	if err != nil {
		return "", fmt.Errorf("ProgramHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainProgram, canonical), nil
}

// ExpressionHash computes the content-addressed identity of one expression
// subtree.
func ExpressionHash(e Expression) (string, error) {
	canonical, err := MarshalCanonicalExpression(e)
	if err != nil {
		return "", fmt.Errorf("ExpressionHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainExpression, canonical), nil
}
