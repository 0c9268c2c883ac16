package services

// Services defined in this package:
// - AuthService: verifies admin credentials against the legacy user table
// - UserService: read-only user browsing plus loyalty point tracking
// - BlogService: blog category and post management
// - TemplateService: email template management
// - DispatchService: bulk email/SMS orchestration (recipient resolution,
//   template load, per-recipient personalization, outbound channel calls)
