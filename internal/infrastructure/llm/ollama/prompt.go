package ollama

import (
	"fmt"
	"strings"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
	"github.com/chitwa-lm/admissions-verifier/internal/verifier/signatures"
)

const maxSnippet = 4000

func snippet(ex domain.ExtractedText) string {
	text := ex.Text
	if len(text) > maxSnippet {
		text = text[:maxSnippet]
	}
	return text
}

func buildClassifyPrompt(table *signatures.Table, ex domain.ExtractedText) string {
	var keys []string
	for _, sig := range table.Entries() {
		keys = append(keys, string(sig.Key))
	}

	return fmt.Sprintf(`You classify school admissions documents.
Return a strict JSON object with keys:
detected_type (one of: %s), confidence (integer 0-100), reasons (array of short strings).
No markdown, no extra keys.

Filename: %s

Document text:
%s`, strings.Join(keys, ", "), ex.Filename, snippet(ex))
}

func buildFieldsPrompt(sig signatures.Signature, ex domain.ExtractedText) string {
	return fmt.Sprintf(`You check a %s for required information.
Required fields: %s.
Return a strict JSON object with keys:
missing_fields (array of required field names absent from the text),
extracted_data (object mapping present field names to their values).
No markdown, no extra keys.

Document text:
%s`, sig.Label, strings.Join(sig.RequiredFields, ", "), snippet(ex))
}

func buildQualityPrompt(ex domain.ExtractedText) string {
	return fmt.Sprintf(`You judge how cleanly text was extracted from a scanned document.
The file is %d bytes. Penalize garbled characters, OCR artifacts, and near-empty text.
Return a strict JSON object with keys:
readability (integer 0-100), issues (array of short strings).
No markdown, no extra keys.

Extracted text:
%s`, ex.SizeBytes, snippet(ex))
}

func buildAuthenticityPrompt(ex domain.ExtractedText) string {
	return fmt.Sprintf(`You judge whether a document appears to be an official original.
Official wording (registrar, ministry, seal, certified) raises the score;
sample/draft wording or a suspicious filename lowers it.
Return a strict JSON object with keys:
legitimacy_score (integer 0-100), suspicious_elements (array of short strings).
No markdown, no extra keys.

Filename: %s

Document text:
%s`, ex.Filename, snippet(ex))
}
