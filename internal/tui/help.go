package tui

const helpMarkdown = `# boxroom

Annotate each customer with a disposition and send the batch.

## Dispositions

- **m** — mail notice
- **p** — package notice (picks an origin)
- **n** — clear back to none
- **o** — change the origin of a package row

Switching a row away from *package* always discards its origin.

## Batch

- **s** — validate and send every non-none row. A package row without an
  origin blocks the whole batch; an all-none table is an error, not a
  silent success.

## Session

- **R** — re-check the session against the server
- **L** — sign out (local: discards the stored token)
- **r** — reload the customer and origin listings (resets the draft)

Press any key to close this help.`

func (m appModel) renderHelp() string {
	return renderMarkdown(helpMarkdown, m.contentWidth()-4)
}
