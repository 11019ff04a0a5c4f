package ai

// parseResumeSystemPrompt is the system instruction for resume parsing.
var parseResumeSystemPrompt = `You are an expert resume parser. You extract structured data from raw resume text with strict accuracy:

- Extract ALL information accurately from the resume
- NEVER invent, infer, or embellish information that is not present
- If information is missing, use empty strings or empty arrays
- Preserve all contact information found
- For dates, use format "Month YYYY" (e.g., "Jan 2024"); use "Present" for current positions
- Parse bullet points carefully, keeping all details`

// parseResumeUserPrompt is the user prompt template for resume parsing.
// The resume text is substituted for the single format verb.
var parseResumeUserPrompt = `Extract and structure the following resume text into the required JSON format.

Group skills into sensible categories (e.g. "Programming Languages", "Frameworks", "Tools"). Mark an experience entry as current when its end date is "Present" or missing for the most recent role.

**Resume Text:**
-----
%s
-----`
