package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"formulaSheet/contracts"
	"math"
)

var SerializerError = errors.New("invalid serialized data")

// uint16 label length + label + error kind + float64 bits
const cellRecordHeaderSize = 2

const cellRecordOutcomeSize = 1 + 8

type CellRecordSerializer struct {
}

func NewCellRecordSerializer() *CellRecordSerializer {
	return &CellRecordSerializer{}
}

func (s *CellRecordSerializer) Marshal(record *contracts.CellRecord) []byte {
	labelBytes := []byte(record.Label)

	serializedData := make([]byte, 0, cellRecordHeaderSize+len(labelBytes)+cellRecordOutcomeSize+len(record.Formula))

	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(labelBytes)))
	serializedData = append(serializedData, labelBytes...)
	serializedData = append(serializedData, byte(record.Error))
	serializedData = binary.LittleEndian.AppendUint64(serializedData, math.Float64bits(record.Value))
	serializedData = append(serializedData, []byte(record.Formula)...)
	return serializedData
}

func (s *CellRecordSerializer) Unmarshal(data []byte) (*contracts.CellRecord, error) {
	if len(data) < cellRecordHeaderSize {
		return nil, fmt.Errorf("%w: should be more than 2 bytes (data: %v)", SerializerError, string(data))
	}

	labelLength := int(binary.LittleEndian.Uint16(data))
	outcomeOffset := cellRecordHeaderSize + labelLength
	if len(data) < outcomeOffset+cellRecordOutcomeSize {
		return nil, fmt.Errorf("%w: label size is less than bytes amount (labelSize: %d; data: %v)", SerializerError, labelLength, string(data))
	}

	errorKind := contracts.ErrorKind(data[outcomeOffset])
	if _, err := errorKind.MarshalText(); err != nil {
		return nil, fmt.Errorf("%w: %w", SerializerError, err)
	}

	return &contracts.CellRecord{
		Label:   string(data[cellRecordHeaderSize:outcomeOffset]),
		Error:   errorKind,
		Value:   math.Float64frombits(binary.LittleEndian.Uint64(data[outcomeOffset+1:])),
		Formula: string(data[outcomeOffset+cellRecordOutcomeSize:]),
	}, nil
}
