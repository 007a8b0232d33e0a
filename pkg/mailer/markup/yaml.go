package markup

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseDocument decodes a document from YAML:
//
//	title: Welcome
//	blocks:
//	  - kind: heading
//	    level: 1
//	    text: Welcome aboard
//	  - kind: button
//	    label: Get started
//	    url: https://example.com/start
//
// Parsing does not validate the blocks; validation happens on render.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// ParseBlocks decodes a YAML sequence of blocks, for fragments shared between documents.
func ParseBlocks(data []byte) ([]Block, error) {
	var blocks []Block
	if err := yaml.Unmarshal(data, &blocks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return blocks, nil
}
