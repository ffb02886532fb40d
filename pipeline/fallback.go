package pipeline

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/fwojciec/siteforge"
)

// fallbackSite builds a minimal but presentable single-page site purely from
// business facts. It is the degraded output for site synthesis and must
// never fail.
func fallbackSite(facts siteforge.BusinessFacts) *siteforge.GeneratedSite {
	name := html.EscapeString(facts.Name)
	tagline := html.EscapeString(siteDescription(facts))

	var services strings.Builder
	for _, svc := range splitServices(facts.Services) {
		fmt.Fprintf(&services, `<div class="bg-white rounded-lg shadow p-6"><h3 class="text-lg font-semibold">%s</h3></div>`, html.EscapeString(svc))
	}
	if services.Len() == 0 {
		services.WriteString(`<div class="bg-white rounded-lg shadow p-6"><h3 class="text-lg font-semibold">Get in touch to learn about our services</h3></div>`)
	}

	var contact strings.Builder
	if facts.Email != "" {
		fmt.Fprintf(&contact, `<p class="text-lg">Email: <a class="text-blue-600" href="mailto:%[1]s">%[1]s</a></p>`, html.EscapeString(facts.Email))
	}
	if facts.Phone != "" {
		fmt.Fprintf(&contact, `<p class="text-lg">Phone: %s</p>`, html.EscapeString(facts.Phone))
	}
	if facts.Location != "" {
		fmt.Fprintf(&contact, `<p class="text-lg">%s</p>`, html.EscapeString(facts.Location))
	}
	if contact.Len() == 0 {
		contact.WriteString(`<p class="text-lg">Contact us to get started.</p>`)
	}

	about := facts.Description
	if about == "" {
		about = fmt.Sprintf("%s is dedicated to serving its customers with quality and care.", facts.Name)
	}

	doc := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%[1]s</title>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 text-gray-900">
<section class="bg-blue-700 text-white py-24 text-center px-4">
<h1 class="text-4xl md:text-5xl font-bold mb-4">%[1]s</h1>
<p class="text-xl opacity-90">%[2]s</p>
</section>
<section class="max-w-5xl mx-auto py-16 px-4">
<h2 class="text-3xl font-bold mb-8 text-center">Services</h2>
<div class="grid gap-6 md:grid-cols-3">%[3]s</div>
</section>
<section class="bg-white py-16 px-4">
<div class="max-w-3xl mx-auto text-center">
<h2 class="text-3xl font-bold mb-6">About Us</h2>
<p class="text-lg leading-relaxed">%[4]s</p>
</div>
</section>
<section class="max-w-3xl mx-auto py-16 px-4 text-center">
<h2 class="text-3xl font-bold mb-6">Contact</h2>
%[5]s
</section>
<footer class="bg-gray-900 text-gray-400 text-center py-6">
<p>&copy; %[6]d %[1]s</p>
</footer>
</body>
</html>`,
		name, tagline, services.String(), html.EscapeString(about), contact.String(), time.Now().Year())

	return &siteforge.GeneratedSite{
		HTML:        doc,
		Title:       facts.Name,
		Description: siteDescription(facts),
		GeneratedAt: time.Now().UTC(),
	}
}

func splitServices(services string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(services, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	}) {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// fallbackEmail is the deterministic cold email used when generation fails.
func fallbackEmail(req siteforge.OutreachRequest) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Subject: A fresh website for %s\n\n", req.Facts.Name)
	fmt.Fprintf(&sb, "Hi")
	if req.Facts.Owner != "" {
		fmt.Fprintf(&sb, " %s", req.Facts.Owner)
	}
	sb.WriteString(",\n\n")
	fmt.Fprintf(&sb, "I came across %s and put together a redesigned version of your website that I think could help you win more customers online.\n\n", req.Facts.Name)
	sb.WriteString("The new design is modern, mobile friendly, and built to turn visitors into enquiries. I'd love to show you a live preview - no strings attached.\n\n")
	if req.Price != "" {
		fmt.Fprintf(&sb, "If you like it, the full package is %s.\n\n", req.Price)
	}
	sb.WriteString("Would you be open to a quick look this week?\n\n")
	fmt.Fprintf(&sb, "Best regards,\n%s\n%s\n", req.SenderName, req.SenderEmail)

	return sb.String()
}

// fallbackProposal is the deterministic proposal used when generation fails.
func fallbackProposal(req siteforge.OutreachRequest) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "WEBSITE REDESIGN PROPOSAL\nPrepared for: %s\n", req.Facts.Name)
	fmt.Fprintf(&sb, "Prepared by: %s <%s>\n\n", req.SenderName, req.SenderEmail)

	sb.WriteString("OVERVIEW\n")
	fmt.Fprintf(&sb, "This proposal outlines a complete redesign of the %s website, focused on a modern look, mobile usability and converting visitors into customers.\n\n", req.Facts.Name)

	sb.WriteString("CURRENT WEBSITE\n")
	if req.Facts.Issues != "" {
		fmt.Fprintf(&sb, "%s\n\n", req.Facts.Issues)
	} else {
		sb.WriteString("The current website does not reflect the quality of the business and leaves enquiries on the table.\n\n")
	}

	sb.WriteString("PROPOSED SOLUTION\n")
	sb.WriteString("A fast, mobile-first single-page website with clear sections for your services, your story and how to get in touch, styled to match your brand.\n\n")

	sb.WriteString("DELIVERABLES\n")
	sb.WriteString("- Complete redesigned website, ready to host\n- Mobile and desktop responsive layout\n- Contact section wired to your email and phone\n- One round of revisions\n\n")

	sb.WriteString("TIMELINE\n")
	sb.WriteString("Delivery within one week of approval.\n\n")

	sb.WriteString("INVESTMENT\n")
	if req.Price != "" {
		fmt.Fprintf(&sb, "%s\n", req.Price)
	} else {
		sb.WriteString("To be agreed based on final scope.\n")
	}

	return sb.String()
}
