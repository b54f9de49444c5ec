package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"canteen-order-system/lifecycle"
	"canteen-order-system/models"
	"canteen-order-system/stores"
)

// ErrEndOfInput is returned when input ends before a session could start
var ErrEndOfInput = errors.New("end of input")

// ErrRoleNotSupported is returned when a logged-in user has no console menu
var ErrRoleNotSupported = errors.New("no menu for this role")

const adminMenuText = `
--- ADMIN MENU ---
1. Add Menu Item
2. Edit Menu Item
3. Display Menu
4. Add Consumer
5. Edit Consumer
6. Display Consumers
7. Add User
8. Edit User
9. Display Users
10. Place Order
11. Undo Last Order
12. Display Orders
13. Serve Next Order
0. Logout
`

// AdminSession is the staff console: record management plus order handling
type AdminSession struct {
	session
	consumers *stores.ConsumerStore
	users     *stores.UserStore
}

// NewAdminSession creates an AdminSession reading from in and writing to out
func NewAdminSession(in io.Reader, out io.Writer, ctrl *lifecycle.Controller, menu *stores.MenuStore,
	consumers *stores.ConsumerStore, users *stores.UserStore, logger *slog.Logger) *AdminSession {
	return &AdminSession{
		session:   newSession(newPrompter(in, out), ctrl, menu, logger),
		consumers: consumers,
		users:     users,
	}
}

// Login prompts until valid credentials are given or input ends
func (s *AdminSession) Login() (*models.User, error) {
	s.p.printf("===== CANTEEN MANAGEMENT SYSTEM =====\n")
	for {
		username, ok := s.p.ask("Enter username: ")
		if !ok {
			return nil, s.endOfInput()
		}
		password, ok := s.p.ask("Enter password: ")
		if !ok {
			return nil, s.endOfInput()
		}

		user, err := s.users.Login(username, password)
		if errors.Is(err, stores.ErrBadCredentials) {
			s.logger.Warn("Login failed", "username", username)
			s.p.printf("Invalid username or password. Try again.\n")
			continue
		}
		if err != nil {
			return nil, err
		}
		s.logger.Info("Login succeeded", "username", user.Username, "role", user.Role)
		return user, nil
	}
}

// Run logs a user in and serves the menu for their role until logout or end of input
func (s *AdminSession) Run() error {
	user, err := s.Login()
	if err != nil {
		return err
	}
	if user.Role != models.RoleAdmin {
		s.p.printf("Unknown role.\n")
		return fmt.Errorf("%s: %w", user.Role, ErrRoleNotSupported)
	}
	return s.serve()
}

func (s *AdminSession) serve() error {
	for {
		s.p.printf("%s", adminMenuText)
		choice, ok, err := s.p.askInt("Choose option: ")
		if !ok {
			return s.p.err()
		}
		if err != nil {
			s.p.printf("Invalid choice!\n")
			continue
		}

		switch choice {
		case 1:
			s.addMenuItem()
		case 2:
			s.editMenuItem()
		case 3:
			writeMenu(s.p.out, s.menu.List())
		case 4:
			s.addConsumer()
		case 5:
			s.editConsumer()
		case 6:
			writeConsumers(s.p.out, s.consumers.List())
		case 7:
			s.addUser()
		case 8:
			s.editUser()
		case 9:
			writeUsers(s.p.out, s.users.List())
		case 10:
			s.placeOrder()
		case 11:
			s.reportUndo(s.ctrl.UndoLastOrder())
		case 12:
			if err := s.ctrl.WriteOrders(s.p.out); err != nil {
				return err
			}
		case 13:
			s.serveNext()
		case 0:
			s.p.printf("Logging out...\n")
			s.logger.Info("Logout")
			return nil
		default:
			s.p.printf("Invalid choice!\n")
		}
	}
}

func (s *AdminSession) addMenuItem() {
	fields, ok, err := s.p.askFields("Enter ID, Name, Type(0-FOOD,1-DRINK,2-DESSERT), Price, Quantity: ", 5)
	if !ok {
		return
	}
	if err != nil {
		s.p.printf("Invalid input: %v\n", err)
		return
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		s.p.printf("Invalid menu ID.\n")
		return
	}
	category, err := models.ParseCategory(fields[2])
	if err != nil {
		s.p.printf("Invalid input: %v\n", err)
		return
	}
	price, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		s.p.printf("Invalid price.\n")
		return
	}
	stock, err := strconv.Atoi(fields[4])
	if err != nil {
		s.p.printf("Invalid quantity.\n")
		return
	}

	if _, err := s.menu.Add(models.MenuItem{ID: id, Name: fields[1], Category: category, Price: price, Stock: stock}); err != nil {
		s.p.printf("Could not add menu item: %v\n", err)
		return
	}
	s.logger.Info("Menu item added", "item_id", id, "stock", stock)
}

func (s *AdminSession) editMenuItem() {
	id, ok, err := s.p.askInt("Enter Menu ID to edit: ")
	if !ok {
		return
	}
	if err != nil {
		s.p.printf("Invalid menu ID.\n")
		return
	}
	fields, ok, err := s.p.askFields("Enter New Name, Type(0-FOOD,1-DRINK,2-DESSERT), Price: ", 3)
	if !ok {
		return
	}
	if err != nil {
		s.p.printf("Invalid input: %v\n", err)
		return
	}
	category, err := models.ParseCategory(fields[1])
	if err != nil {
		s.p.printf("Invalid input: %v\n", err)
		return
	}
	price, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		s.p.printf("Invalid price.\n")
		return
	}

	if err := s.menu.Edit(id, fields[0], category, price); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			s.p.printf("Menu item with ID %d not found.\n", id)
			return
		}
		s.p.printf("Could not edit menu item: %v\n", err)
		return
	}
	s.logger.Info("Menu item edited", "item_id", id, "price", price)
}

func (s *AdminSession) addConsumer() {
	fields, ok, err := s.p.askFields("Enter UID, Name, Type(0-STUDENT,1-STAFF,2-FACULTY): ", 3)
	if !ok {
		return
	}
	if err != nil {
		s.p.printf("Invalid input: %v\n", err)
		return
	}
	t, err := models.ParseConsumerType(fields[2])
	if err != nil {
		s.p.printf("Invalid input: %v\n", err)
		return
	}
	if _, err := s.consumers.Add(models.Consumer{UID: fields[0], Name: fields[1], Type: t}); err != nil {
		s.p.printf("Could not add consumer: %v\n", err)
		return
	}
	s.logger.Info("Consumer added", "consumer_uid", fields[0])
}

func (s *AdminSession) editConsumer() {
	uid, ok := s.p.ask("Enter UID to edit: ")
	if !ok {
		return
	}
	fields, ok, err := s.p.askFields("Enter New Name, Type(0-STUDENT,1-STAFF,2-FACULTY): ", 2)
	if !ok {
		return
	}
	if err != nil {
		s.p.printf("Invalid input: %v\n", err)
		return
	}
	t, err := models.ParseConsumerType(fields[1])
	if err != nil {
		s.p.printf("Invalid input: %v\n", err)
		return
	}
	if err := s.consumers.Edit(uid, fields[0], t); err != nil {
		s.p.printf("Consumer with UID %s not found.\n", uid)
		return
	}
	s.logger.Info("Consumer edited", "consumer_uid", uid)
}

func (s *AdminSession) addUser() {
	fields, ok, err := s.p.askFields("Enter UID, Name, Username, Password, Role(0-ADMIN,1-MANAGER,2-CASHIER): ", 5)
	if !ok {
		return
	}
	if err != nil {
		s.p.printf("Invalid input: %v\n", err)
		return
	}
	role, err := models.ParseRole(fields[4])
	if err != nil {
		s.p.printf("Invalid input: %v\n", err)
		return
	}
	if _, err := s.users.Add(fields[0], fields[1], fields[2], fields[3], role); err != nil {
		s.p.printf("Could not add user: %v\n", err)
		return
	}
	s.logger.Info("User added", "username", fields[2], "role", role)
}

func (s *AdminSession) editUser() {
	uid, ok := s.p.ask("Enter UID to edit: ")
	if !ok {
		return
	}
	fields, ok, err := s.p.askFields("Enter New Name, Username, Password, Role(0-ADMIN,1-MANAGER,2-CASHIER): ", 4)
	if !ok {
		return
	}
	if err != nil {
		s.p.printf("Invalid input: %v\n", err)
		return
	}
	role, err := models.ParseRole(fields[3])
	if err != nil {
		s.p.printf("Invalid input: %v\n", err)
		return
	}
	if err := s.users.Edit(uid, fields[0], fields[1], fields[2], role); err != nil {
		s.p.printf("Could not edit user: %v\n", err)
		return
	}
	s.logger.Info("User edited", "user_uid", uid, "role", role)
}

func (s *AdminSession) placeOrder() {
	writeConsumers(s.p.out, s.consumers.List())
	uid, ok := s.p.ask("Enter Consumer UID: ")
	if !ok {
		return
	}

	placement, err := s.ctrl.Begin(uid)
	if err != nil {
		s.p.printf("Consumer not found!\n")
		return
	}

	writeMenu(s.p.out, s.menu.List())
	_, _ = s.takeOrder(placement)
}

func (s *AdminSession) serveNext() {
	order, err := s.ctrl.ServeNext()
	if err != nil {
		s.p.printf("No orders in queue.\n")
		return
	}
	s.p.printf("Serving order %d for %s.\n", order.ID, order.ConsumerName)
	_ = s.ctrl.WriteBill(s.p.out, order)
}
