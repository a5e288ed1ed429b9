package iso20022

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// DecodeDocument reads a Document from XML. Parse errors carry the byte
// offset the decoder had reached.
func DecodeDocument(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	var d Document
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("iso20022: decode document at byte %d: %w", dec.InputOffset(), err)
	}
	return &d, nil
}

// EncodeDocument writes the Document as indented XML with a standard
// header.
func EncodeDocument(w io.Writer, d *Document) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("iso20022: encode document: %w", err)
	}
	return enc.Close()
}

// MarshalDocumentXML renders the Document as a standalone XML payload.
func MarshalDocumentXML(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalDocumentJSON renders the Document as indented JSON.
func MarshalDocumentJSON(d *Document) ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("iso20022: encode document json: %w", err)
	}
	return out, nil
}

// UnmarshalDocumentJSON parses a Document from JSON.
func UnmarshalDocumentJSON(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("iso20022: decode document json: %w", err)
	}
	return &d, nil
}
