package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mentorhub/mentorhub-client/internal/api"
	"github.com/mentorhub/mentorhub-client/internal/controllers"
	"github.com/mentorhub/mentorhub-client/internal/models"
	"github.com/mentorhub/mentorhub-client/internal/views"
)

// shell is the interactive terminal surface. It implements the Navigator
// and ErrorPresenter interfaces the view controllers are written against:
// navigation changes the active route, errors print as a blocking notice.
type shell struct {
	deps shellDeps

	mu        sync.Mutex
	route     string
	chat      *controllers.ChatSession
	viewport  *terminalViewport
	composer  controllers.Composer
	panel     *controllers.ReviewPanel
	stopped   bool
	searching controllers.SearchForm

	login        *views.LoginView
	register     *views.RegisterView
	createProf   *views.ProfileCreateView
	verification *views.EmailVerificationView
	profile      *views.ProfileView
	mentorList   *views.MentorListView
	chatList     *views.ChatListView
}

func newShell(deps shellDeps) *shell {
	s := &shell{deps: deps, route: views.RouteLogin}

	s.login = views.NewLoginView(deps.auth, deps.store, s, s)
	s.register = views.NewRegisterView(deps.auth, deps.store, s, s)
	s.createProf = views.NewProfileCreateView(deps.profile, deps.store, s, s)
	s.verification = views.NewEmailVerificationView(deps.auth, deps.store, s, s, deps.verifyDelay)
	s.profile = views.NewProfileView(deps.profile, deps.auth, deps.store, s, s)
	s.mentorList = views.NewMentorListView(deps.mentors, deps.store, s, s, deps.debounce, s.printMentors)
	s.chatList = views.NewChatListView(deps.chats, deps.store, s, s, deps.chatCfg)

	if deps.store.IsAuthenticated() {
		s.route = views.RouteProfile
	}
	return s
}

// Navigate records the active route and prints it. Route changes close an
// open chat session first.
func (s *shell) Navigate(route string) {
	s.mu.Lock()
	if s.chat != nil && route != s.route {
		s.chat.Close()
		s.chat = nil
	}
	s.route = route
	s.mu.Unlock()

	fmt.Printf("-> %s\n", route)
}

// ShowError is the terminal rendering of the blocking error modal.
func (s *shell) ShowError(message string) {
	fmt.Printf("ERROR: %s\n", message)
}

// Interrupt unblocks a pending read so Run can observe cancellation.
func (s *shell) Interrupt() {
	s.mu.Lock()
	s.stopped = true
	chat := s.chat
	s.chat = nil
	s.mu.Unlock()

	if chat != nil {
		chat.Close()
	}
	os.Stdin.Close()
}

// Run is the command loop. It returns when the input closes, the context
// is cancelled, or the user quits.
func (s *shell) Run(ctx context.Context) {
	fmt.Println("MentorHub client. Type 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)

	for {
		s.mu.Lock()
		stopped := s.stopped
		inChat := s.chat != nil
		route := s.route
		s.mu.Unlock()

		if stopped || ctx.Err() != nil {
			return
		}

		if inChat {
			fmt.Print("chat> ")
		} else {
			fmt.Printf("%s> ", route)
		}
		if !scanner.Scan() {
			s.closeChat()
			return
		}
		line := scanner.Text()

		if inChat {
			s.handleChatLine(ctx, line)
			continue
		}
		if !s.handleCommand(ctx, scanner, line) {
			return
		}
	}
}

func (s *shell) handleCommand(ctx context.Context, scanner *bufio.Scanner, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		s.printHelp()
	case "quit", "exit":
		s.mentorList.Close()
		return false

	case "login":
		if !expectArgs(args, 2, "login <email> <password>") {
			return true
		}
		s.login.Submit(ctx, args[0], args[1])
	case "register":
		if !expectArgs(args, 3, "register <email> <password> <STUDENT|MENTOR>") {
			return true
		}
		s.register.Submit(ctx, args[0], args[1], "ROLE_"+strings.ToUpper(args[2]))
	case "logout":
		s.profile.Logout()

	case "create-profile":
		s.runProfileCreation(ctx, scanner)
	case "verify":
		if !expectArgs(args, 1, "verify <token>") {
			return true
		}
		s.verification.Confirm(ctx, args[0])
	case "resend":
		s.verification.Resend(ctx)

	case "profile":
		if profile, pictureURL, ok := s.profile.Open(ctx); ok {
			s.printProfile(profile, pictureURL)
		}
	case "update-bio":
		if len(args) == 0 {
			fmt.Println("usage: update-bio <text>")
			return true
		}
		bio := strings.Join(args, " ")
		if s.profile.Update(ctx, models.ProfileUpdateRequest{Bio: &bio}) {
			fmt.Println("Profile updated.")
		}
	case "update-picture":
		if !expectArgs(args, 1, "update-picture <path>") {
			return true
		}
		s.updatePicture(ctx, args[0])
	case "delete-account":
		fmt.Print("Delete your account permanently? (yes/no) ")
		if scanner.Scan() && strings.TrimSpace(scanner.Text()) == "yes" {
			s.profile.DeleteAccount(ctx)
		}

	case "mentors":
		if cached := s.mentorList.Open(); cached != nil {
			s.printMentors(cached)
		}
	case "search":
		s.mu.Lock()
		s.searching.Keyword = strings.Join(args, " ")
		form := s.searching
		s.mu.Unlock()
		s.mentorList.EditForm(form)
	case "sort":
		if !expectArgs(args, 1, "sort <field,asc|desc>") {
			return true
		}
		s.mu.Lock()
		s.searching.Sort = args[0]
		form := s.searching
		s.mu.Unlock()
		s.mentorList.EditForm(form)

	case "reviews":
		if !expectArgs(args, 1, "reviews <mentorId>") {
			return true
		}
		s.openReviews(ctx, args[0])
	case "review":
		if len(args) < 3 {
			fmt.Println("usage: review <mentorId> <rating> <comment>")
			return true
		}
		s.submitReview(ctx, args[0], args[1], strings.Join(args[2:], " "))
	case "edit-review":
		if len(args) < 3 {
			fmt.Println("usage: edit-review <reviewId> <rating> <comment>")
			return true
		}
		s.editReview(ctx, args[0], args[1], strings.Join(args[2:], " "))
	case "delete-review":
		if !expectArgs(args, 1, "delete-review <reviewId>") {
			return true
		}
		s.deleteReview(ctx, args[0])

	case "chats":
		if chats, ok := s.chatList.Open(ctx); ok {
			s.printChats(chats)
		}
	case "open":
		if !expectArgs(args, 1, "open <chatId>") {
			return true
		}
		s.openChat(ctx, args[0])
	case "message":
		if !expectArgs(args, 1, "message <mentorId>") {
			return true
		}
		s.startChat(ctx, args[0])

	default:
		fmt.Printf("Unknown command %q. Type 'help'.\n", cmd)
	}
	return true
}

// handleChatLine is chat-mode input: a trailing backslash continues the
// draft on a new line, "/back" leaves the chat, anything else submits.
func (s *shell) handleChatLine(ctx context.Context, line string) {
	if strings.TrimSpace(line) == "/back" {
		s.closeChat()
		s.Navigate(views.RouteChats)
		return
	}

	modified := strings.HasSuffix(line, "\\")
	s.composer.Append(strings.TrimSuffix(line, "\\"))

	content, submit := s.composer.HandleReturn(modified)
	if !submit {
		return
	}

	s.mu.Lock()
	chat := s.chat
	s.mu.Unlock()
	if chat == nil {
		return
	}

	if _, err := chat.Send(ctx, content); err != nil {
		s.ShowError("Message could not be sent.")
	}
}

func (s *shell) runProfileCreation(ctx context.Context, scanner *bufio.Scanner) {
	role, ok := s.createProf.Open()
	if !ok {
		return
	}

	form := views.ProfileCreateForm{}
	form.FirstName = prompt(scanner, "First name")
	form.LastName = prompt(scanner, "Last name")
	form.Bio = prompt(scanner, "Bio")
	form.Age, _ = strconv.Atoi(prompt(scanner, "Age"))

	switch role {
	case models.RoleStudent:
		form.Student.EducationLevel = prompt(scanner, "Education level")
		form.Student.LearningGoals = prompt(scanner, "Learning goals")
	case models.RoleMentor:
		form.Mentor.HourlyRate, _ = strconv.ParseFloat(prompt(scanner, "Hourly rate"), 64)
		form.Mentor.Specialization = prompt(scanner, "Specialization")
		form.Mentor.ExperienceYears, _ = strconv.Atoi(prompt(scanner, "Years of experience"))
		form.Mentor.MentorTargetStudents = prompt(scanner, "Target students")
	}

	path := prompt(scanner, "Profile picture path")
	file, err := os.Open(path)
	if err != nil {
		s.ShowError("Could not read the profile picture file.")
		return
	}
	defer file.Close()
	form.Picture = api.Upload{Filename: file.Name(), Reader: file}

	s.createProf.Submit(ctx, form)
}

func (s *shell) updatePicture(ctx context.Context, path string) {
	file, err := os.Open(path)
	if err != nil {
		s.ShowError("Could not read the profile picture file.")
		return
	}
	defer file.Close()

	if s.profile.UpdatePicture(ctx, api.Upload{Filename: file.Name(), Reader: file}) {
		fmt.Println("Profile picture updated.")
	}
}

func (s *shell) openReviews(ctx context.Context, rawID string) {
	mentorID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Println("usage: reviews <mentorId>")
		return
	}

	panel, ok := s.mentorList.OpenReviews(ctx, mentorID)
	if !ok {
		return
	}

	s.mu.Lock()
	s.panel = panel
	s.mu.Unlock()

	for _, review := range panel.Reviews() {
		fmt.Printf("#%d %s %s: %d/5 — %s\n",
			review.ID, review.StudentFirstName, review.StudentLastName,
			review.Rating, review.Comment)
	}
	if panel.CanReview() {
		fmt.Println("Use 'review <mentorId> <rating> <comment>' to add yours.")
	}
}

func (s *shell) submitReview(ctx context.Context, rawMentorID, rawRating, comment string) {
	mentorID, err := strconv.ParseInt(rawMentorID, 10, 64)
	rating, err2 := strconv.Atoi(rawRating)
	if err != nil || err2 != nil {
		fmt.Println("usage: review <mentorId> <rating> <comment>")
		return
	}

	panel := s.reviewPanelFor(ctx, mentorID)
	if panel == nil {
		return
	}
	if err := panel.Submit(ctx, rating, comment); err != nil {
		s.presentPanelError(err)
		return
	}
	fmt.Println("Review submitted.")
}

func (s *shell) editReview(ctx context.Context, rawID, rawRating, comment string) {
	reviewID, err := strconv.ParseInt(rawID, 10, 64)
	rating, err2 := strconv.Atoi(rawRating)
	if err != nil || err2 != nil {
		fmt.Println("usage: edit-review <reviewId> <rating> <comment>")
		return
	}

	s.mu.Lock()
	panel := s.panel
	s.mu.Unlock()
	if panel == nil {
		fmt.Println("Open a mentor's reviews first.")
		return
	}
	if err := panel.Edit(ctx, reviewID, rating, comment); err != nil {
		s.presentPanelError(err)
		return
	}
	fmt.Println("Review updated.")
}

func (s *shell) deleteReview(ctx context.Context, rawID string) {
	reviewID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Println("usage: delete-review <reviewId>")
		return
	}

	s.mu.Lock()
	panel := s.panel
	s.mu.Unlock()
	if panel == nil {
		fmt.Println("Open a mentor's reviews first.")
		return
	}
	if err := panel.Delete(ctx, reviewID); err != nil {
		s.presentPanelError(err)
		return
	}
	fmt.Println("Review deleted.")
}

func (s *shell) reviewPanelFor(ctx context.Context, mentorID int64) *controllers.ReviewPanel {
	s.mu.Lock()
	panel := s.panel
	s.mu.Unlock()
	if panel != nil && panel.MentorID() == mentorID {
		return panel
	}

	panel, ok := s.mentorList.OpenReviews(ctx, mentorID)
	if !ok {
		return nil
	}
	s.mu.Lock()
	s.panel = panel
	s.mu.Unlock()
	return panel
}

func (s *shell) presentPanelError(err error) {
	s.ShowError(views.UserMessage(err))
}

func (s *shell) openChat(ctx context.Context, rawID string) {
	chatID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Println("usage: open <chatId>")
		return
	}

	viewport := newTerminalViewport(s.deps.scrollTolerancePx)
	sess, ok := s.chatList.OpenChat(ctx, viewport, chatID)
	if !ok {
		return
	}
	s.adoptChat(sess, viewport)
}

func (s *shell) startChat(ctx context.Context, rawID string) {
	mentorID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Println("usage: message <mentorId>")
		return
	}

	viewport := newTerminalViewport(s.deps.scrollTolerancePx)
	sess, ok := s.chatList.StartChat(ctx, viewport, mentorID)
	if !ok {
		return
	}
	s.adoptChat(sess, viewport)
}

func (s *shell) adoptChat(sess *controllers.ChatSession, viewport *terminalViewport) {
	viewport.bind(sess)

	s.mu.Lock()
	old := s.chat
	s.chat = sess
	s.composer.Reset()
	s.mu.Unlock()
	if old != nil {
		old.Close()
	}

	fmt.Println("Entered chat. Send with Enter, end a line with '\\' for a newline, '/back' to leave.")
	viewport.PinToBottom()
}

func (s *shell) closeChat() {
	s.mu.Lock()
	chat := s.chat
	s.chat = nil
	s.mu.Unlock()
	if chat != nil {
		chat.Close()
	}
}

func (s *shell) printHelp() {
	fmt.Print(`Commands:
  login <email> <password>        register <email> <password> <STUDENT|MENTOR>
  create-profile                  verify <token> | resend
  profile                         update-bio <text> | update-picture <path>
  logout                          delete-account
  mentors                         search <keyword> | sort <field,asc|desc>
  reviews <mentorId>              review <mentorId> <rating> <comment>
  edit-review <id> <rating> <c>   delete-review <id>
  chats                           open <chatId> | message <mentorId>
  quit
`)
}

func (s *shell) printProfile(profile *models.UserProfile, pictureURL string) {
	fmt.Printf("%s %s (%d)\n", profile.FirstName, profile.LastName, profile.Age)
	if profile.Bio != "" {
		fmt.Println(profile.Bio)
	}
	if profile.Specialization != "" {
		fmt.Printf("Mentor: %s, %d years, $%.2f/h, rated %.1f\n",
			profile.Specialization, profile.ExperienceYears,
			profile.HourlyRate, profile.AverageRating)
	}
	if profile.EducationLevel != "" {
		fmt.Printf("Student: %s — %s\n", profile.EducationLevel, profile.LearningGoals)
	}
	if pictureURL != "" {
		fmt.Printf("Picture: %s\n", pictureURL)
	}
}

func (s *shell) printMentors(mentors []models.Mentor) {
	if len(mentors) == 0 {
		fmt.Println("No mentors found.")
		return
	}
	for _, m := range mentors {
		fmt.Printf("#%d %s %s — %s, %d years, $%.2f/h, rated %.1f\n",
			m.MentorID, m.FirstName, m.LastName, m.Specialization,
			m.ExperienceYears, m.HourlyRate, m.AverageRating)
	}
}

func (s *shell) printChats(chats []models.Chat) {
	if len(chats) == 0 {
		fmt.Println("No chats yet.")
		return
	}
	for _, c := range chats {
		name := c.MentorName
		if s.deps.store.Role() == models.RoleMentor {
			name = c.StudentName
		}
		unread := ""
		if c.UnreadCount > 0 {
			unread = fmt.Sprintf(" (%d unread)", c.UnreadCount)
		}
		fmt.Printf("#%d %s%s — %s  %s\n", c.ChatID, name, unread,
			c.LastMessageContent, s.chatList.FormatListTime(c.LastMessageTime))
	}
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Printf("%s: ", label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func expectArgs(args []string, n int, usage string) bool {
	if len(args) != n {
		fmt.Println("usage: " + usage)
		return false
	}
	return true
}

// terminalViewport hosts the message pane in the terminal, backed by the
// pixel-tolerance viewport with geometry measured in transcript lines.
// The terminal prints the full transcript, so the recorded geometry
// always ends at the bottom; a pin renders the messages that arrived
// since the last one.
type terminalViewport struct {
	px *controllers.PixelViewport

	mu      sync.Mutex
	sess    *controllers.ChatSession
	printed int
}

func newTerminalViewport(scrollTolerancePx int) *terminalViewport {
	v := &terminalViewport{}
	v.px = controllers.NewPixelViewport(scrollTolerancePx, v.printNew)
	return v
}

// bind attaches the session after construction; the session needs the
// viewport at creation time, so the two are tied together in two steps.
func (v *terminalViewport) bind(sess *controllers.ChatSession) {
	v.mu.Lock()
	v.sess = sess
	v.mu.Unlock()
}

func (v *terminalViewport) AtBottom() bool {
	return v.px.AtBottom()
}

func (v *terminalViewport) PinToBottom() {
	v.px.PinToBottom()
}

func (v *terminalViewport) printNew() {
	v.mu.Lock()
	sess := v.sess
	v.mu.Unlock()
	if sess == nil {
		return
	}

	messages := sess.Messages()
	v.mu.Lock()
	start := v.printed
	if start > len(messages) {
		start = 0
	}
	v.printed = len(messages)
	v.mu.Unlock()

	for _, m := range messages[start:] {
		fmt.Printf("[%s] %s: %s\n", m.SentAt.Format("15:04"), m.SenderName, m.Content)
	}
	v.px.SetGeometry(0, len(messages), len(messages))
}
