package commands

import "petstay-backend/internal/domain/booking"

type CodeGenerators struct {
	Room   booking.CodeGenerator
	Sitter booking.CodeGenerator
}

func NewCodeGenerators() CodeGenerators {
	return CodeGenerators{
		Room:   booking.NewCodeGenerator("RB"),
		Sitter: booking.NewCodeGenerator("SB"),
	}
}
